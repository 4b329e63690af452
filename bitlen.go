package permiter

// Unsigned is the constraint satisfied by Go's built-in unsigned integer
// types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// BitLength reports the number of bits needed to represent n, counted as
// the number of right-shifts required to reduce n to zero. The bit length
// of 0 is undefined; it is reported as ok == false.
func BitLength[N Unsigned](n N) (length int, ok bool) {
	if n == 0 {
		return 0, false
	}
	for ; n > 0; n >>= 1 {
		length++
	}
	return length, true
}
