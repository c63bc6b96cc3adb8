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

import "unsafe"

// Fill sets dst[beginIndex:endIndex] to value.
//
// The kernel tier is chosen from caps; every tier yields the same contents.
// Out-of-range indices panic via the runtime's bounds check.
func Fill[T Lanes](caps CPUInfo, dst []T, beginIndex, endIndex int, value T) {
	region := dst[beginIndex:endIndex]
	n := len(region)
	if n == 0 {
		return
	}

	v := selectVariant(fillVariants, caps)
	if v.scalar() {
		fillScalar(region, value)
		return
	}

	var z T
	elemSize := int(unsafe.Sizeof(z))
	unroll := v.unroll(elemSize)
	head, body, _ := splitRange(unsafe.Pointer(&region[0]), elemSize, n, v.align, unroll)

	fillScalar(region[:head], value)
	if body > 0 {
		if streaming(caps, int64(n)*int64(elemSize)) {
			fillBulk(region[head:head+body], value)
		} else {
			fillWide(region[head:head+body], value, unroll)
		}
	}
	fillScalar(region[head+body:], value)
}

// fillScalar is the portable fallback body.
func fillScalar[T Lanes](dst []T, value T) {
	for i := range dst {
		dst[i] = value
	}
}

// fillWide writes unroll elements per iteration. The fixed-length inner
// block lets the compiler vectorize the stores for the selected tier width.
func fillWide[T Lanes](dst []T, value T, unroll int) {
	for i := 0; i+unroll <= len(dst); i += unroll {
		blk := dst[i : i+unroll]
		for j := range blk {
			blk[j] = value
		}
	}
}

// fillBulk is the cache-bypassing body: a doubling pattern of O(log n) copy
// calls. Large memmove blocks go through the runtime's non-temporal path,
// keeping fills bigger than the cache from evicting the working set.
func fillBulk[T Lanes](dst []T, value T) {
	if len(dst) == 0 {
		return
	}
	dst[0] = value
	for filled := 1; filled < len(dst); filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}
