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
	"os"
	"strconv"
	"sync"
	"sync/atomic"
)

var (
	probeMu sync.Mutex
	probed  atomic.Bool
	cached  atomic.Uint64
)

// Probe returns the capability descriptor for the running processor.
//
// Detection runs at most once per process; every later call returns the
// memoized value. Concurrent first calls are safe: the mutex guards the
// single detection, and readers always see a complete descriptor. Any fault
// during detection degrades silently to descriptor 0 (scalar everywhere);
// it is never surfaced as an error and never retried within the process.
func Probe() CPUInfo {
	if !probed.Load() {
		probeMu.Lock()
		if !probed.Load() {
			cached.Store(uint64(detect()))
			probed.Store(true)
		}
		probeMu.Unlock()
	}
	return CPUInfo(cached.Load())
}

// SetCPUInfo overrides the memoized descriptor, after applying the downgrade
// rules. Intended for benchmarking kernel tiers; the value persists until
// ResetCPUInfo.
func SetCPUInfo(v CPUInfo) {
	probeMu.Lock()
	cached.Store(uint64(v.normalize()))
	probed.Store(true)
	probeMu.Unlock()
}

// ResetCPUInfo discards any override and re-runs detection.
func ResetCPUInfo() {
	probeMu.Lock()
	cached.Store(uint64(detect()))
	probed.Store(true)
	probeMu.Unlock()
}

func detect() (info CPUInfo) {
	defer func() {
		// A trap while talking to the hardware means no capabilities,
		// not an error.
		if recover() != nil {
			info = 0
		}
	}()
	if NoSimdEnv() {
		return 0
	}
	return probeArch().normalize()
}

// NoSimdEnv checks if the ARR_NO_SIMD environment variable is set.
// When set, detection reports no capabilities and every operation uses the
// scalar fallback. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("ARR_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
