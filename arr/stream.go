package arr

// StreamFloorBytes is the L2 size assumed when detection found none. Bulk
// fill/copy bodies larger than half the (assumed) L2 take the non-temporal
// path. The threshold is a performance heuristic, not a correctness rule:
// both paths produce identical output.
var StreamFloorBytes = 64 << 10

// streamThreshold returns the byte size above which fill and copy bodies
// bypass the cache.
func streamThreshold(caps CPUInfo) int64 {
	l2 := caps.L2CacheSize()
	if l2 < int64(StreamFloorBytes) {
		l2 = int64(StreamFloorBytes)
	}
	return l2 / 2
}

// streaming reports whether an operation of sizeBytes should use
// cache-bypassing stores for its body.
func streaming(caps CPUInfo, sizeBytes int64) bool {
	return sizeBytes > streamThreshold(caps)
}
