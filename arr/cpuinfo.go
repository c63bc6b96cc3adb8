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

import "strings"

// CPUInfo is a packed 64-bit capability descriptor: instruction-set feature
// flags, the processor family, and L1-data/L2 cache size estimates.
//
// The base flags sit at their CPUID leaf-1 EDX bit positions, so on x86 the
// low half of the descriptor is simply the masked feature register. The high
// half holds vendor extension flags and the packed cache/family fields.
//
// A descriptor is computed once per process (see Probe) and passed by value;
// zero means "no special capabilities", which always selects scalar kernels.
type CPUInfo uint64

const (
	// CPUFPU indicates a floating-point unit.
	CPUFPU CPUInfo = 1 << 0

	// CPUTSC indicates a readable cycle counter.
	CPUTSC CPUInfo = 1 << 4

	// CPUCMOV indicates conditional-move support, including the
	// floating-point forms. Cleared whenever CPUFPU is absent.
	CPUCMOV CPUInfo = 1 << 15

	// CPUVecInt indicates the basic 64-bit short-vector integer tier (MMX).
	CPUVecInt CPUInfo = 1 << 23

	// CPUVecF1 indicates the first 128-bit short-vector float generation
	// (SSE). Always set when CPUVecF2 is set.
	CPUVecF1 CPUInfo = 1 << 25

	// CPUVecF2 indicates the second short-vector float generation (SSE2),
	// which extends the 128-bit registers to integer and double lanes.
	CPUVecF2 CPUInfo = 1 << 26

	// CPUAMD indicates the AMD vendor string was detected.
	CPUAMD CPUInfo = 1 << 59

	// CPUVecIntEx indicates the extended integer vector operations
	// (MMX extensions: vector min/max, streaming stores). Always set when
	// CPUVecF1 is set.
	CPUVecIntEx CPUInfo = 1 << 60

	// CPUVendorVecEx is the second sub-level of the vendor float extension
	// (enhanced 3DNow!). Cleared whenever CPUVendorVec is absent.
	CPUVendorVecEx CPUInfo = 1 << 62

	// CPUVendorVec is the vendor-specific float vector extension (3DNow!).
	CPUVendorVec CPUInfo = 1 << 63
)

const (
	l2SizeShift = 32
	l2SizeMask  = 1023 // 10 bits, units of L2SizeUnit, max 32 MiB

	l1DataSizeShift = 42
	l1DataSizeMask  = 255 // 8 bits, units of L1DataSizeUnit, max 2 MiB

	familyShift = 50
	familyMask  = 15
)

const (
	// L2SizeUnit is the granularity of the packed L2 cache size field.
	L2SizeUnit = 32 * 1024

	// L1DataSizeUnit is the granularity of the packed L1 data cache field.
	L1DataSizeUnit = 8 * 1024
)

// Has reports whether every flag in f is set.
func (c CPUInfo) Has(f CPUInfo) bool {
	return c&f == f
}

// Family returns the processor family/generation number (4 bits).
func (c CPUInfo) Family() int {
	return int((c >> familyShift) & familyMask)
}

// L1DataCacheSize returns the detected L1 data cache size in bytes,
// or 0 when unknown.
func (c CPUInfo) L1DataCacheSize() int64 {
	return int64((c>>l1DataSizeShift)&l1DataSizeMask) * L1DataSizeUnit
}

// L2CacheSize returns the detected L2 cache size in bytes, or 0 when unknown.
func (c CPUInfo) L2CacheSize() int64 {
	return int64((c>>l2SizeShift)&l2SizeMask) * L2SizeUnit
}

// normalize applies the downgrade rules: a capability flag is cleared when a
// flag it depends on is absent, so the descriptor never claims a tier whose
// prerequisite is missing.
func (c CPUInfo) normalize() CPUInfo {
	if c&CPUFPU == 0 {
		c &^= CPUCMOV
	}
	if c&CPUVecInt == 0 {
		c &^= CPUVecIntEx | CPUVecF1 | CPUVecF2
	}
	if c&CPUVecIntEx == 0 {
		c &^= CPUVecF1 | CPUVecF2
	}
	if c&CPUVecF1 == 0 {
		c &^= CPUVecF2
	}
	if c&CPUVendorVec == 0 {
		c &^= CPUVendorVecEx
	}
	return c
}

// packCacheSizes folds byte sizes into the fixed-width descriptor fields.
// Sizes round down to the field unit and saturate at the field maximum.
func packCacheSizes(l1Data, l2 int64) CPUInfo {
	l1 := l1Data / L1DataSizeUnit
	if l1 > l1DataSizeMask {
		l1 = l1DataSizeMask
	}
	l2u := l2 / L2SizeUnit
	if l2u > l2SizeMask {
		l2u = l2SizeMask
	}
	return CPUInfo(l2u)<<l2SizeShift | CPUInfo(l1)<<l1DataSizeShift
}

// packFamily folds the family number into its descriptor field.
func packFamily(family int) CPUInfo {
	return CPUInfo(family&familyMask) << familyShift
}

var flagNames = []struct {
	flag CPUInfo
	name string
}{
	{CPUFPU, "fpu"},
	{CPUTSC, "tsc"},
	{CPUCMOV, "cmov"},
	{CPUVecInt, "vecint"},
	{CPUVecF1, "vecf1"},
	{CPUVecF2, "vecf2"},
	{CPUAMD, "amd"},
	{CPUVecIntEx, "vecintex"},
	{CPUVendorVecEx, "vendorvecex"},
	{CPUVendorVec, "vendorvec"},
}

// String lists the set flags, for diagnostics.
func (c CPUInfo) String() string {
	if c == 0 {
		return "none"
	}
	var names []string
	for _, f := range flagNames {
		if c.Has(f.flag) {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
