package arr

import (
	"testing"
	"time"
)

func TestElapsedTimeNanosMonotone(t *testing.T) {
	a := ElapsedTimeNanos()
	time.Sleep(time.Millisecond)
	b := ElapsedTimeNanos()
	if b <= a {
		t.Errorf("clock did not advance: %d then %d", a, b)
	}
	if b-a < uint64(time.Millisecond)/2 {
		t.Errorf("1ms sleep measured as %dns", b-a)
	}
}

func TestCycleCounterUnsupportedReturnsZero(t *testing.T) {
	defer ResetCPUInfo()
	SetCPUInfo(0) // no TSC flag
	if CycleCounterSupported() {
		t.Fatal("descriptor 0 must report no cycle counter")
	}
	if got := CycleCounter(); got != 0 {
		t.Errorf("CycleCounter without support = %d, want 0", got)
	}
}
