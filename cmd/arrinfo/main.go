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

// Command arrinfo prints the CPU capability descriptor used by the arrays
// dispatcher, alongside what the host actually reports.
//
// Usage:
//
//	arrinfo            # human-readable report
//	arrinfo -json      # machine-readable report
//	arrinfo -raw       # just the packed 64-bit descriptor, in hex
//
// The report includes the library's own probe result, the richer feature
// view from the cpuid library, and where each cache size came from. It is
// the first thing to attach when a dispatch decision looks wrong on some
// machine.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	gojson "github.com/goccy/go-json"
	"github.com/klauspost/cpuid/v2"

	"github.com/algart/go-arrays/arr"
)

var (
	jsonOut = flag.Bool("json", false, "Emit the report as JSON")
	rawOut  = flag.Bool("raw", false, "Print only the packed descriptor in hex")
)

type report struct {
	Descriptor   string   `json:"descriptor"`
	Flags        string   `json:"flags"`
	Family       int      `json:"family"`
	L1DataBytes  int64    `json:"l1_data_bytes"`
	L2Bytes      int64    `json:"l2_bytes"`
	CycleCounter bool     `json:"cycle_counter"`
	GOARCH       string   `json:"goarch"`
	BrandName    string   `json:"brand_name"`
	VendorID     string   `json:"vendor_id"`
	HostFeatures []string `json:"host_features"`
	HostL1D      int      `json:"host_l1_data_bytes"`
	HostL2       int      `json:"host_l2_bytes"`
}

func main() {
	flag.Parse()

	caps := arr.Probe()
	if *rawOut {
		fmt.Printf("%#016x\n", uint64(caps))
		return
	}

	r := report{
		Descriptor:   fmt.Sprintf("%#016x", uint64(caps)),
		Flags:        caps.String(),
		Family:       caps.Family(),
		L1DataBytes:  caps.L1DataCacheSize(),
		L2Bytes:      caps.L2CacheSize(),
		CycleCounter: arr.CycleCounterSupported(),
		GOARCH:       runtime.GOARCH,
		BrandName:    cpuid.CPU.BrandName,
		VendorID:     cpuid.CPU.VendorString,
		HostFeatures: cpuid.CPU.FeatureSet(),
		HostL1D:      cpuid.CPU.Cache.L1D,
		HostL2:       cpuid.CPU.Cache.L2,
	}

	if *jsonOut {
		enc := gojson.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			fmt.Fprintf(os.Stderr, "arrinfo: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("descriptor:    %s\n", r.Descriptor)
	fmt.Printf("flags:         %s\n", r.Flags)
	fmt.Printf("family:        %d\n", r.Family)
	fmt.Printf("L1 data cache: %d bytes\n", r.L1DataBytes)
	fmt.Printf("L2 cache:      %d bytes\n", r.L2Bytes)
	fmt.Printf("cycle counter: %v\n", r.CycleCounter)
	fmt.Println()
	fmt.Printf("host:          %s (%s, %s)\n", r.BrandName, r.VendorID, r.GOARCH)
	fmt.Printf("host L1 data:  %d bytes\n", r.HostL1D)
	fmt.Printf("host L2:       %d bytes\n", r.HostL2)
}
