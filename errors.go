package permiter

import "errors"

var (
	// ErrZeroMax is returned when a permutation over an upper bound of
	// zero is requested. Zero has no bit length, so no domain can be
	// sized for it.
	ErrZeroMax = errors.New("permiter: max must be greater than zero")

	// ErrPairOverflow is returned when the product of the two pair bounds
	// does not fit in a uint64.
	ErrPairOverflow = errors.New("permiter: product of pair bounds overflows uint64")
)
