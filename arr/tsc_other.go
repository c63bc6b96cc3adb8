//go:build !amd64

package arr

// CycleCounterSupported reports whether CycleCounter returns real readings
// on this processor. No cycle counter is wired up on this architecture.
func CycleCounterSupported() bool {
	return false
}

// CycleCounter returns the raw CPU cycle counter, or 0 when unsupported.
func CycleCounter() uint64 {
	return 0
}
