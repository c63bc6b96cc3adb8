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

import "testing"

// allFlags is every capability flag the descriptor can carry.
const allFlags = CPUFPU | CPUTSC | CPUCMOV | CPUVecInt | CPUVecF1 | CPUVecF2 |
	CPUAMD | CPUVecIntEx | CPUVendorVecEx | CPUVendorVec

// fullCaps returns a descriptor with every flag set and plausible cache and
// family fields, for exercising the most capable tiers.
func fullCaps() CPUInfo {
	return allFlags | packCacheSizes(32<<10, 512<<10) | packFamily(6)
}

// testDescriptors spans the tiers from none to full, for the
// capability-invariance tests.
var testDescriptors = []CPUInfo{
	0,
	CPUFPU,
	CPUFPU | CPUTSC | CPUCMOV,
	CPUFPU | CPUTSC | CPUCMOV | CPUVecInt,
	CPUFPU | CPUTSC | CPUCMOV | CPUVecInt | CPUVecIntEx,
	CPUFPU | CPUTSC | CPUCMOV | CPUVecInt | CPUVecIntEx | CPUVecF1,
	CPUFPU | CPUTSC | CPUCMOV | CPUVecInt | CPUVecIntEx | CPUVecF1 | CPUVecF2,
	fullCaps(),
}

func TestNormalizeDowngrades(t *testing.T) {
	tests := []struct {
		name string
		in   CPUInfo
		want CPUInfo
	}{
		{"zero", 0, 0},
		{"full", allFlags, allFlags},
		{"no_fpu_clears_cmov", CPUCMOV | CPUTSC, CPUTSC},
		{"no_vecint_clears_vector_floats",
			CPUVecIntEx | CPUVecF1 | CPUVecF2 | CPUFPU, CPUFPU},
		{"no_vecintex_clears_vector_floats",
			CPUVecInt | CPUVecF1 | CPUVecF2, CPUVecInt},
		{"no_vecf1_clears_vecf2",
			CPUVecInt | CPUVecIntEx | CPUVecF2, CPUVecInt | CPUVecIntEx},
		{"no_vendorvec_clears_sublevel", CPUVendorVecEx | CPUFPU, CPUFPU},
		{"fields_untouched",
			packCacheSizes(16<<10, 256<<10) | packFamily(5) | CPUVecF2,
			packCacheSizes(16<<10, 256<<10) | packFamily(5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.normalize(); got != tt.want {
				t.Errorf("normalize(%#x) = %#x, want %#x", uint64(tt.in), uint64(got), uint64(tt.want))
			}
		})
	}
}

func TestNormalizeMonotone(t *testing.T) {
	// Normalization only ever clears flags.
	for i := 0; i < 1<<len(flagNames); i++ {
		var caps CPUInfo
		for bit, f := range flagNames {
			if i&(1<<bit) != 0 {
				caps |= f.flag
			}
		}
		norm := caps.normalize()
		if norm&^caps != 0 {
			t.Fatalf("normalize(%#x) set new flags: %#x", uint64(caps), uint64(norm&^caps))
		}
		if again := norm.normalize(); again != norm {
			t.Fatalf("normalize not idempotent for %#x: %#x then %#x",
				uint64(caps), uint64(norm), uint64(again))
		}
	}
}

func TestPackedFields(t *testing.T) {
	caps := packCacheSizes(24<<10, 480<<10) | packFamily(15)
	if got := caps.L1DataCacheSize(); got != 24<<10 {
		t.Errorf("L1DataCacheSize = %d, want %d", got, 24<<10)
	}
	if got := caps.L2CacheSize(); got != 480<<10 {
		t.Errorf("L2CacheSize = %d, want %d", got, 480<<10)
	}
	if got := caps.Family(); got != 15 {
		t.Errorf("Family = %d, want 15", got)
	}
}

func TestPackCacheSizesSaturates(t *testing.T) {
	caps := packCacheSizes(1<<40, 1<<40)
	if got, max := caps.L1DataCacheSize(), int64(255)*L1DataSizeUnit; got != max {
		t.Errorf("saturated L1 = %d, want %d", got, max)
	}
	if got, max := caps.L2CacheSize(), int64(1023)*L2SizeUnit; got != max {
		t.Errorf("saturated L2 = %d, want %d", got, max)
	}
}

func TestPackCacheSizesRoundsDown(t *testing.T) {
	caps := packCacheSizes(L1DataSizeUnit+1, L2SizeUnit-1)
	if got := caps.L1DataCacheSize(); got != L1DataSizeUnit {
		t.Errorf("L1 = %d, want %d", got, L1DataSizeUnit)
	}
	if got := caps.L2CacheSize(); got != 0 {
		t.Errorf("L2 = %d, want 0", got)
	}
}

func TestCPUInfoString(t *testing.T) {
	if got := CPUInfo(0).String(); got != "none" {
		t.Errorf("String(0) = %q, want \"none\"", got)
	}
	caps := CPUFPU | CPUVecInt | CPUVecF1
	if got, want := caps.String(), "fpu,vecint,vecf1"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
	// Packed fields alone carry no flags.
	if got := packCacheSizes(8<<10, 64<<10).String(); got != "none" {
		t.Errorf("String(fields only) = %q, want \"none\"", got)
	}
}
