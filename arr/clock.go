package arr

import "time"

var processStart = time.Now()

// ElapsedTimeNanos returns a monotonic reading in nanoseconds, measured from
// process start. Readings taken on different cores are not guaranteed to be
// synchronized on all hardware; callers compare readings, they do not treat
// them as wall-clock timestamps.
func ElapsedTimeNanos() uint64 {
	return uint64(time.Since(processStart))
}
