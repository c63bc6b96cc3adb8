//go:build !amd64 && !arm64

package arr

// No capability query on this architecture: scalar kernels everywhere.
func probeArch() CPUInfo {
	return 0
}
