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

// Min replaces a[aOfs+i] with the smaller of a[aOfs+i] and b[bOfs+i] for
// every i in [0, n). The result lands in a; b is read-only.
//
// The signedness of T decides the comparison: Min[uint8] is the unsigned
// byte kernel, Min[int8] the signed one. For floats the comparison keeps
// a[i] unless a[i] > b[i], so NaN inputs propagate like the scalar loop.
func Min[T Lanes](caps CPUInfo, a []T, aOfs int, b []T, bOfs int, n int) {
	minRange(caps, a[aOfs:aOfs+n], b[bOfs:bOfs+n])
}

// Max replaces a[aOfs+i] with the larger of a[aOfs+i] and b[bOfs+i] for
// every i in [0, n). The result lands in a; b is read-only.
func Max[T Lanes](caps CPUInfo, a []T, aOfs int, b []T, bOfs int, n int) {
	maxRange(caps, a[aOfs:aOfs+n], b[bOfs:bOfs+n])
}

func minRange[T Lanes](caps CPUInfo, dst, src []T) {
	n := len(dst)
	if n == 0 {
		return
	}
	v := selectVariant(minMaxVariants[T](), caps)
	if v.scalar() {
		minScalar(dst, src)
		return
	}
	var z T
	elemSize := int(unsafe.Sizeof(z))
	unroll := v.unroll(elemSize)
	head, body, _ := splitRange(unsafe.Pointer(&dst[0]), elemSize, n, v.align, unroll)

	minScalar(dst[:head], src[:head])
	if body > 0 {
		minWide(dst[head:head+body], src[head:head+body], unroll)
	}
	minScalar(dst[head+body:], src[head+body:])
}

func maxRange[T Lanes](caps CPUInfo, dst, src []T) {
	n := len(dst)
	if n == 0 {
		return
	}
	v := selectVariant(minMaxVariants[T](), caps)
	if v.scalar() {
		maxScalar(dst, src)
		return
	}
	var z T
	elemSize := int(unsafe.Sizeof(z))
	unroll := v.unroll(elemSize)
	head, body, _ := splitRange(unsafe.Pointer(&dst[0]), elemSize, n, v.align, unroll)

	maxScalar(dst[:head], src[:head])
	if body > 0 {
		maxWide(dst[head:head+body], src[head:head+body], unroll)
	}
	maxScalar(dst[head+body:], src[head+body:])
}

// minScalar is the portable fallback body.
func minScalar[T Lanes](dst, src []T) {
	for i := range dst {
		if dst[i] > src[i] {
			dst[i] = src[i]
		}
	}
}

// maxScalar is the portable fallback body.
func maxScalar[T Lanes](dst, src []T) {
	for i := range dst {
		if dst[i] < src[i] {
			dst[i] = src[i]
		}
	}
}

// minWide compares unroll elements per iteration. The fixed-length inner
// block vectorizes to the selected tier's compare-and-select.
func minWide[T Lanes](dst, src []T, unroll int) {
	for i := 0; i+unroll <= len(dst); i += unroll {
		db, sb := dst[i:i+unroll], src[i:i+unroll]
		for j := range db {
			if db[j] > sb[j] {
				db[j] = sb[j]
			}
		}
	}
}

// maxWide compares unroll elements per iteration.
func maxWide[T Lanes](dst, src []T, unroll int) {
	for i := 0; i+unroll <= len(dst); i += unroll {
		db, sb := dst[i:i+unroll], src[i:i+unroll]
		for j := range db {
			if db[j] < sb[j] {
				db[j] = sb[j]
			}
		}
	}
}
