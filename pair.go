package permiter

import (
	"iter"
	"math/bits"
)

// PairPermutor produces every coordinate pair (i, j) with i in [0, max1)
// and j in [0, max2) exactly once, in pseudorandom order. It drives a
// single Permutor over the product domain [0, max1*max2) and decodes each
// combined value into its two coordinates.
type PairPermutor struct {
	permutor *Permutor
	max2     uint64
}

// NewPairPermutor builds a PairPermutor with a fresh random key. Returns
// ErrZeroMax if either bound is 0 and ErrPairOverflow if max1*max2 does
// not fit in a uint64.
func NewPairPermutor(max1, max2 uint64, opts ...Option) (*PairPermutor, error) {
	max, err := pairProduct(max1, max2)
	if err != nil {
		return nil, err
	}
	p, err := NewPermutor(max, opts...)
	if err != nil {
		return nil, err
	}
	return &PairPermutor{permutor: p, max2: max2}, nil
}

// NewPairPermutorWithKey builds a reproducible PairPermutor with a
// caller-supplied key. Same error conditions as NewPairPermutor.
func NewPairPermutorWithKey(max1, max2 uint64, key Key, opts ...Option) (*PairPermutor, error) {
	max, err := pairProduct(max1, max2)
	if err != nil {
		return nil, err
	}
	p, err := NewPermutorWithKey(max, key, opts...)
	if err != nil {
		return nil, err
	}
	return &PairPermutor{permutor: p, max2: max2}, nil
}

func pairProduct(max1, max2 uint64) (uint64, error) {
	if max1 == 0 || max2 == 0 {
		return 0, ErrZeroMax
	}
	hi, lo := bits.Mul64(max1, max2)
	if hi != 0 {
		return 0, ErrPairOverflow
	}
	return lo, nil
}

// Next returns the next pair of the permutation, or ok == false once all
// max1*max2 pairs have been produced.
func (p *PairPermutor) Next() (i, j uint64, ok bool) {
	v, ok := p.permutor.Next()
	if !ok {
		return 0, 0, false
	}
	return v / p.max2, v % p.max2, true
}

// All returns an iterator over the remaining pairs, for use with a range
// statement. It drives the same cursor as Next.
func (p *PairPermutor) All() iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		for i, j, ok := p.Next(); ok; i, j, ok = p.Next() {
			if !yield(i, j) {
				return
			}
		}
	}
}
