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

// Copy moves n elements from src[srcOfs:] to dst[dstOfs:].
//
// Source and destination ranges may overlap arbitrarily; the result is
// always as if every source element were read before any destination element
// is written (move semantics, not a naive forward copy).
func Copy[T Lanes](caps CPUInfo, src []T, srcOfs int, dst []T, dstOfs int, n int) {
	s := src[srcOfs : srcOfs+n]
	d := dst[dstOfs : dstOfs+n]
	if n == 0 {
		return
	}

	v := selectVariant(copyVariants, caps)
	// The built-in copy is an overlap-safe memmove; it is both the scalar
	// fallback and the only correct body when the ranges alias.
	if v.scalar() || overlaps(s, d) {
		copy(d, s)
		return
	}

	var z T
	elemSize := int(unsafe.Sizeof(z))
	unroll := v.unroll(elemSize)
	head, body, _ := splitRange(unsafe.Pointer(&d[0]), elemSize, n, v.align, unroll)

	copyScalar(d[:head], s[:head])
	if body > 0 {
		if streaming(caps, int64(n)*int64(elemSize)) {
			// Bulk path: the runtime issues non-temporal moves for blocks
			// this large.
			copy(d[head:head+body], s[head:head+body])
		} else {
			copyWide(d[head:head+body], s[head:head+body], unroll)
		}
	}
	copyScalar(d[head+body:], s[head+body:])
}

// CopyBytes moves min(len(src), len(dst)) bytes from src to dst and returns
// the number of bytes moved. This is the raw primitive underneath the typed
// copies; overlapping slices are handled like Copy.
func CopyBytes(caps CPUInfo, src, dst []byte) int {
	n := min(len(src), len(dst))
	Copy(caps, src, 0, dst, 0, n)
	return n
}

// copyScalar is the portable fallback body for non-aliasing ranges.
func copyScalar[T Lanes](dst, src []T) {
	for i := range dst {
		dst[i] = src[i]
	}
}

// copyWide moves unroll elements per iteration.
func copyWide[T Lanes](dst, src []T, unroll int) {
	for i := 0; i+unroll <= len(dst); i += unroll {
		db, sb := dst[i:i+unroll], src[i:i+unroll]
		for j := range db {
			db[j] = sb[j]
		}
	}
}

// overlaps reports whether the two slices share any memory.
func overlaps[T Lanes](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var z T
	size := unsafe.Sizeof(z)
	aLo := uintptr(unsafe.Pointer(&a[0]))
	aHi := aLo + uintptr(len(a))*size
	bLo := uintptr(unsafe.Pointer(&b[0]))
	bHi := bLo + uintptr(len(b))*size
	return aLo < bHi && bLo < aHi
}
