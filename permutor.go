package permiter

import "iter"

// Permutor produces every value in [0, max) exactly once, in the
// pseudorandom order selected by its key. It is a single-owner,
// single-consumer cursor: once exhausted it yields nothing further, and a
// fresh permutation over the same bound requires a new Permutor (which,
// unless constructed with an explicit seed or key, will have a different
// order).
type Permutor struct {
	feistel  *Network
	max      uint64
	current  uint64
	returned uint64
}

// NewPermutor builds a Permutor over [0, max) with a fresh random key.
// Returns ErrZeroMax if max is 0.
func NewPermutor(max uint64, opts ...Option) (*Permutor, error) {
	f, err := NewNetwork(max, opts...)
	if err != nil {
		return nil, err
	}
	return &Permutor{feistel: f, max: max}, nil
}

// NewPermutorWithSeed builds a reproducible Permutor over [0, max), keyed
// by seed via KeyFromSeed. Returns ErrZeroMax if max is 0.
func NewPermutorWithSeed(max, seed uint64, opts ...Option) (*Permutor, error) {
	f, err := NewNetworkWithSeed(max, seed, opts...)
	if err != nil {
		return nil, err
	}
	return &Permutor{feistel: f, max: max}, nil
}

// NewPermutorWithKey builds a Permutor over [0, max) with a
// caller-supplied key. Returns ErrZeroMax if max is 0.
func NewPermutorWithKey(max uint64, key Key, opts ...Option) (*Permutor, error) {
	f, err := NewNetworkWithKey(max, key, opts...)
	if err != nil {
		return nil, err
	}
	return &Permutor{feistel: f, max: max}, nil
}

// Next returns the next value of the permutation, or ok == false once all
// max values have been produced. Exhaustion is permanent.
//
// Internally the cursor walks the full power-of-two domain and discards
// permuted values >= max; by the network's bijectivity every in-range
// value appears exactly once before the domain runs out.
func (p *Permutor) Next() (value uint64, ok bool) {
	for p.returned < p.max {
		candidate := p.feistel.Permute(p.current)
		p.current++
		if candidate >= p.max {
			continue
		}
		p.returned++
		return candidate, true
	}
	return 0, false
}

// All returns an iterator over the remaining values, for use with a range
// statement. It drives the same cursor as Next: ranging partway and then
// calling Next continues where the range left off, and the combined
// values seen through both still cover [0, max) exactly once.
func (p *Permutor) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for v, ok := p.Next(); ok; v, ok = p.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
