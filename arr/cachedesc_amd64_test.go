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

// Register layouts below pack descriptor bytes little-endian within each
// register; byte 0 of EAX is the repeat count and is always skipped.
func TestParseCacheDescriptors(t *testing.T) {
	tests := []struct {
		name   string
		raw    [4]uint32
		family int
		wantL1 int64
		wantL2 int64
	}{
		{
			name: "empty",
			raw:  [4]uint32{0x01, 0, 0, 0},
		},
		{
			// Classic Pentium III layout: 0x2C (L1D 32K) and 0x43 (L2 512K).
			name:   "p3_like",
			raw:    [4]uint32{0x2C01, 0x43, 0, 0},
			family: 6,
			wantL1: 32 << 10,
			wantL2: 512 << 10,
		},
		{
			// Same descriptors on a newer family: the 0x4x code points now
			// describe a tertiary cache and must not count toward L2.
			name:   "newer_family_ignores_4x",
			raw:    [4]uint32{0x2C01, 0x43, 0, 0},
			family: 15,
			wantL1: 32 << 10,
		},
		{
			// 0x66 (L1D 8K sectored) and 0x7B (L2 512K).
			name:   "netburst_like",
			raw:    [4]uint32{0x66_01, 0, 0x7B, 0},
			family: 15,
			wantL1: 8 << 10,
			wantL2: 512 << 10,
		},
		{
			// 0x0A (L1D 8K) and 0x82 (L2 256K), descriptors spread across
			// registers.
			name:   "spread",
			raw:    [4]uint32{0x01, 0x0A, 0, 0x82},
			family: 6,
			wantL1: 8 << 10,
			wantL2: 256 << 10,
		},
		{
			// A register with bit 31 set holds no descriptors.
			name:   "invalid_register_skipped",
			raw:    [4]uint32{0x01, 0x80000043, 0, 0},
			family: 6,
		},
		{
			// Contributions sum across descriptors: 0x60 (16K) + 0x0C (16K).
			name:   "l1_sums",
			raw:    [4]uint32{0x60_01, 0x0C, 0, 0},
			family: 6,
			wantL1: 32 << 10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l1, l2 := parseCacheDescriptors(tt.raw, tt.family)
			if l1 != tt.wantL1 {
				t.Errorf("L1 data = %d, want %d", l1, tt.wantL1)
			}
			if l2 != tt.wantL2 {
				t.Errorf("L2 = %d, want %d", l2, tt.wantL2)
			}
		})
	}
}
