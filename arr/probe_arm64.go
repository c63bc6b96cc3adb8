// Copyright 2025 go-arrays Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arr

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

func probeArch() CPUInfo {
	// NEON/ASIMD provides the whole fixed-width vector tier in one step:
	// 128-bit integer and float lanes. It maps onto the same capability bits
	// the dispatcher keys on, so the wide kernels engage on ARM as well.
	info := CPUFPU
	if cpu.ARM64.HasASIMD {
		info |= CPUVecInt | CPUVecIntEx | CPUVecF1 | CPUVecF2
	}

	var l1Data, l2 int64
	if c := cpuid.CPU.Cache.L1D; c > 0 {
		l1Data = int64(c)
	}
	if c := cpuid.CPU.Cache.L2; c > 0 {
		l2 = int64(c)
	}
	info |= packCacheSizes(l1Data, l2)

	return info
}
