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

// cpuidex executes the CPUID instruction with the given leaf and subleaf.
//
//go:noescape
func cpuidex(op, op2 uint32) (eax, ebx, ecx, edx uint32)

// "AuthenticAMD" as leaf-0 register values.
const (
	amdVendorEBX = 0x68747541
	amdVendorEDX = 0x69746E65
	amdVendorECX = 0x444D4163
)

// Families above this one repurpose the leaf-2 0x4x descriptors for a
// tertiary cache level, which the descriptor ignores.
const l2DescriptorMaxFamily = 6

func probeArch() CPUInfo {
	maxLeaf, vb, vc, vd := cpuidex(0, 0)
	if maxLeaf == 0 {
		return 0
	}

	eax1, _, _, edx1 := cpuidex(1, 0)
	info := CPUInfo(edx1) & (CPUFPU | CPUTSC | CPUCMOV | CPUVecInt | CPUVecF1 | CPUVecF2)
	family := int(eax1 >> 8 & 0xF)
	info |= packFamily(family)

	// The raw flags say what the silicon has; the runtime feature mask says
	// what the OS saves and restores. Claim only the intersection.
	if !cpu.X86.HasSSE2 {
		info &^= CPUVecF2
	}

	var l1Data, l2 int64
	if vb == amdVendorEBX && vd == amdVendorEDX && vc == amdVendorECX {
		// Vendor path: extended leaves report features and cache sizes
		// directly.
		info |= CPUAMD
		maxExt, _, _, _ := cpuidex(0x80000000, 0)
		if maxExt >= 0x80000001 {
			_, _, _, extEDX := cpuidex(0x80000001, 0)
			if extEDX&(1<<22) != 0 {
				info |= CPUVecIntEx
			}
			if extEDX&(1<<30) != 0 {
				info |= CPUVendorVecEx
			}
			if extEDX&(1<<31) != 0 {
				info |= CPUVendorVec
			}
		}
		if maxExt >= 0x80000005 {
			_, _, ecx5, _ := cpuidex(0x80000005, 0)
			l1Data = int64(ecx5>>24) * 1024
		}
		if maxExt >= 0x80000006 {
			_, _, ecx6, _ := cpuidex(0x80000006, 0)
			l2 = int64(ecx6>>16) * 1024
		}
	} else if maxLeaf >= 2 {
		l1Data, l2 = intelCacheDescriptors(family)
	}

	// The extended integer vector ops ship with the first float generation
	// on every non-AMD part, so the flag follows it.
	if info.Has(CPUVecF1) {
		info |= CPUVecIntEx
	}

	if l1Data == 0 && l2 == 0 {
		// Modern parts stopped publishing size descriptors through the
		// legacy leaves; fall back to the deterministic-topology leaves
		// via the cpuid library.
		if c := cpuid.CPU.Cache.L1D; c > 0 {
			l1Data = int64(c)
		}
		if c := cpuid.CPU.Cache.L2; c > 0 {
			l2 = int64(c)
		}
	}
	info |= packCacheSizes(l1Data, l2)

	return info
}

// intelCacheDescriptors walks the fifteen one-byte cache descriptors of
// leaf 2, summing the L1-data and L2 contributions. The descriptor byte is
// keyed by its high nibble (cache kind and size class) and low nibble
// (sub-size within the class).
func intelCacheDescriptors(family int) (l1Data, l2 int64) {
	eax, ebx, ecx, edx := cpuidex(2, 0)
	return parseCacheDescriptors([4]uint32{eax, ebx, ecx, edx}, family)
}

func parseCacheDescriptors(raw [4]uint32, family int) (l1Data, l2 int64) {
	// The low byte of EAX is the query repeat count; 1 on everything this
	// legacy heuristic targets, so one read covers all fifteen bytes.
	regs := [4]uint32{raw[0] &^ 0xFF, raw[1], raw[2], raw[3]}
	for _, reg := range regs {
		if reg&(1<<31) != 0 {
			// Register does not hold descriptors.
			continue
		}
		for ; reg != 0; reg >>= 8 {
			d := byte(reg)
			lo := int64(d & 0xF)
			switch d >> 4 {
			case 0x0:
				// 0x0A, 0x0C, 0x0E: L1 data 8/16/24 KiB.
				switch lo {
				case 0xA:
					l1Data += 8 << 10
				case 0xC:
					l1Data += 16 << 10
				case 0xE:
					l1Data += 24 << 10
				}
			case 0x2:
				if lo == 0xC {
					l1Data += 32 << 10 // 0x2C
				}
			case 0x4:
				// 0x41..0x45: L2 128 KiB << (n-1) on older families only;
				// newer ones reuse these code points for L3.
				if lo >= 1 && lo <= 5 && family <= l2DescriptorMaxFamily {
					l2 += (128 << 10) << (lo - 1)
				}
			case 0x6:
				// 0x60: L1 data 16 KiB; 0x66..0x68: L1 data 8/16/32 KiB.
				switch {
				case lo == 0:
					l1Data += 16 << 10
				case lo >= 6 && lo <= 8:
					l1Data += (8 << 10) << (lo - 6)
				}
			case 0x7:
				// 0x79..0x7D: L2 128 KiB << (n-9).
				if lo >= 9 && lo <= 0xD {
					l2 += (128 << 10) << (lo - 9)
				}
			case 0x8:
				// 0x82..0x87: L2 256 KiB upward.
				switch lo {
				case 2:
					l2 += 256 << 10
				case 3, 6:
					l2 += 512 << 10
				case 4, 7:
					l2 += 1 << 20
				case 5:
					l2 += 2 << 20
				}
			}
		}
	}
	return l1Data, l2
}
