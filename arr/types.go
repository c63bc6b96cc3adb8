// Package arr provides bulk array primitives (fill, copy, element-wise
// min/max) with runtime CPU dispatch.
//
// Every operation takes a capability descriptor obtained from Probe and
// selects the fastest implementation tier the processor supports, falling
// back to a portable scalar loop. The descriptor only changes which code
// path runs, never the result.
//
// Basic usage:
//
//	caps := arr.Probe()
//
//	buf := make([]int32, 1<<20)
//	arr.Fill(caps, buf, 0, len(buf), 7)
//
//	arr.Min(caps, a, 0, b, 0, len(a))
package arr

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all element types the kernels operate on:
// fixed-width integers and IEEE floats.
type Lanes interface {
	Floats | Integers
}
