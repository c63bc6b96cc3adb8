package arr

// rdtsc reads the time-stamp counter.
//
//go:noescape
func rdtsc() uint64

// CycleCounterSupported reports whether CycleCounter returns real readings
// on this processor.
func CycleCounterSupported() bool {
	return Probe().Has(CPUTSC)
}

// CycleCounter returns the raw CPU cycle counter, or 0 when unsupported.
// Readings are not comparable across cores or across frequency-scaling
// events; use ElapsedTimeNanos for wall-clock measurements.
func CycleCounter() uint64 {
	if !CycleCounterSupported() {
		return 0
	}
	return rdtsc()
}
