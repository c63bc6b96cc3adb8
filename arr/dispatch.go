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

// kernelVariant describes one implementation tier of an operation: the
// capability flags it requires, how many bytes its body consumes per
// iteration, and the memory alignment the body assumes.
//
// Variants for an operation are listed from most to least capable and always
// end with the scalar tier (no requirements, width 0), so selection is total.
type kernelVariant struct {
	name  string
	need  CPUInfo // required flags; all must be set in the descriptor
	width int     // body step in bytes; 0 means scalar
	align int     // body alignment in bytes; 0 means none
}

// scalar reports whether this is the portable fallback tier.
func (v kernelVariant) scalar() bool {
	return v.width == 0
}

// unroll returns the elements the body consumes per iteration for the given
// element size.
func (v kernelVariant) unroll(elemSize int) int {
	if v.width < elemSize {
		return 1
	}
	return v.width / elemSize
}

// Variant tables. The tiers mirror the hardware generations the capability
// flags describe: the second float generation widens everything to full
// 128-bit integer/double lanes, the first covers 128-bit float lanes, the
// extended integer tier adds 64-bit vector min/max, and conditional moves
// give branch-free scalar compares for doubles.
var (
	fillVariants = []kernelVariant{
		{name: "fill/vec128x2", need: CPUVecF2, width: 32, align: 32},
		{name: "fill/vec128", need: CPUVecF1, width: 16, align: 16},
		{name: "fill/vec64", need: CPUVecInt, width: 8, align: 8},
		{name: "fill/scalar"},
	}

	copyVariants = []kernelVariant{
		{name: "copy/vec128x4", need: CPUVecF1, width: 64, align: 32},
		{name: "copy/scalar"},
	}

	minMaxIntVariants = []kernelVariant{
		{name: "minmax/vec128x2", need: CPUVecF2, width: 32, align: 32},
		{name: "minmax/vec64ex", need: CPUVecIntEx, width: 8, align: 8},
		{name: "minmax/scalar"},
	}

	minMaxWideIntVariants = []kernelVariant{
		{name: "minmax/vec128x2", need: CPUVecF2, width: 32, align: 32},
		{name: "minmax/scalar"},
	}

	minMaxF32Variants = []kernelVariant{
		{name: "minmax/vec128x2", need: CPUVecF2, width: 32, align: 32},
		{name: "minmax/vec128f", need: CPUVecF1, width: 16, align: 16},
		{name: "minmax/scalar"},
	}

	minMaxF64Variants = []kernelVariant{
		{name: "minmax/vec128x2", need: CPUVecF2, width: 32, align: 32},
		{name: "minmax/cmov", need: CPUCMOV, width: 32, align: 8},
		{name: "minmax/scalar"},
	}
)

// minMaxVariants picks the tier table for the element type. 64-bit integers
// have no narrow vector tier below the second float generation.
func minMaxVariants[T Lanes]() []kernelVariant {
	var z T
	switch any(z).(type) {
	case float32:
		return minMaxF32Variants
	case float64:
		return minMaxF64Variants
	case int64, uint64:
		return minMaxWideIntVariants
	default:
		return minMaxIntVariants
	}
}

// selectVariant walks the capability-ordered list and returns the first
// variant whose requirements the descriptor satisfies. Deterministic: a pure
// function of the table and the descriptor.
func selectVariant(variants []kernelVariant, caps CPUInfo) kernelVariant {
	for _, v := range variants {
		if caps.Has(v.need) {
			return v
		}
	}
	// Unreachable for well-formed tables; the scalar terminator has no
	// requirements.
	return kernelVariant{name: "scalar"}
}

// splitRange partitions n elements starting at address p into an unaligned
// head (run with the scalar body until the alignment boundary), an aligned
// body (a multiple of unroll elements), and a trailing tail.
//
// The head collapses to zero when the address is already aligned, when the
// element size does not divide the misalignment (alignment is then
// unreachable by whole elements), or when the range is shorter than the head
// would be.
func splitRange(p unsafe.Pointer, elemSize, n, align, unroll int) (head, body, tail int) {
	if unroll <= 1 || n < unroll {
		return 0, 0, n
	}
	if align > 0 {
		if disp := int(uintptr(p) & uintptr(align-1)); disp != 0 && disp%elemSize == 0 {
			head = (align - disp) / elemSize
			if head > n {
				head = 0
			}
		}
	}
	rest := n - head
	body = rest - rest%unroll
	tail = rest - body
	return head, body, tail
}
