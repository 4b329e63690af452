package permiter

import (
	"encoding/binary"
	"io"
)

// rounds is the fixed Feistel round count. Far more than the handful the
// construction needs to be a permutation; a conservatism constant, not a
// tuned security parameter.
const rounds = 32

// Option adjusts construction of a Network, Permutor or PairPermutor.
type Option func(*config)

type config struct {
	hash RoundHash
	rand io.Reader
}

// WithRoundHash substitutes the round-function hash. The default is
// HashXXH3.
func WithRoundHash(h RoundHash) Option {
	return func(c *config) { c.hash = h }
}

// WithRandom sets the source of key material for the fresh-random-key
// constructors. The default is crypto/rand.Reader. Seed- and key-based
// constructors never read from it.
func WithRandom(r io.Reader) Option {
	return func(c *config) { c.rand = r }
}

func newConfig(opts []Option) config {
	c := config{hash: HashXXH3}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Network is a keyed balanced Feistel permutation over [0, 2^width),
// where width is the bit length of the max it was constructed for,
// rounded up to the next even number. It is immutable after construction
// and safe for concurrent Permute calls.
//
// Note that the domain is the full power-of-two superset of [0, max):
// Permute can and does return values >= max. Clients wanting a bounded
// permutation iterate the domain and discard out-of-range outputs, which
// is what Permutor does.
type Network struct {
	halfWidth uint
	rightMask uint64
	leftMask  uint64
	key       Key
	hash      RoundHash
}

// NewNetwork builds a Network sized for max with a fresh random key drawn
// from the configured source (crypto/rand.Reader unless WithRandom says
// otherwise). Returns ErrZeroMax if max is 0.
func NewNetwork(max uint64, opts ...Option) (*Network, error) {
	c := newConfig(opts)
	key, err := NewRandomKey(c.rand)
	if err != nil {
		return nil, err
	}
	return newNetwork(max, key, c.hash)
}

// NewNetworkWithSeed builds a Network sized for max, keyed by seed via
// KeyFromSeed. The permutation is reproducible: the same max and seed
// always select the same ordering. Returns ErrZeroMax if max is 0.
func NewNetworkWithSeed(max, seed uint64, opts ...Option) (*Network, error) {
	c := newConfig(opts)
	return newNetwork(max, KeyFromSeed(seed), c.hash)
}

// NewNetworkWithKey builds a Network sized for max with a caller-supplied
// key. Returns ErrZeroMax if max is 0.
func NewNetworkWithKey(max uint64, key Key, opts ...Option) (*Network, error) {
	c := newConfig(opts)
	return newNetwork(max, key, c.hash)
}

func newNetwork(max uint64, key Key, hash RoundHash) (*Network, error) {
	width, ok := BitLength(max)
	if !ok {
		return nil, ErrZeroMax
	}
	if width%2 != 0 {
		width++
	}
	halfWidth := uint(width) / 2
	rightMask := uint64(1)<<halfWidth - 1
	return &Network{
		halfWidth: halfWidth,
		rightMask: rightMask,
		leftMask:  rightMask << halfWidth,
		key:       key,
		hash:      hash,
	}, nil
}

// Width returns the total bit width of the permutation domain, which is
// always even. The domain is [0, 2^Width()).
func (n *Network) Width() int {
	return int(2 * n.halfWidth)
}

// Permute maps x to its image under the permutation. For the lifetime of
// one Network this is a bijection over [0, 2^Width()): distinct in-domain
// inputs give distinct outputs, and every domain value is the image of
// exactly one input. Behavior for input with bits above the active width
// is unspecified.
func (n *Network) Permute(x uint64) uint64 {
	left := (x & n.leftMask) >> n.halfWidth
	right := x & n.rightMask

	// Each round is invertible regardless of the round function, so the
	// whole network is too.
	for i := 0; i < rounds; i++ {
		left, right = right, left^(n.round(right, uint8(i))&n.rightMask)
	}

	return ((left << n.halfWidth) | right) & (n.leftMask | n.rightMask)
}

// round computes the round function: the hash of
// key ‖ right as 8 bytes big-endian ‖ round index ‖ key.
// Framing the key on both sides of the message reduces the chance of
// length-extension-style ambiguity with a non-cryptographic hash.
func (n *Network) round(right uint64, index uint8) uint64 {
	var msg [2*KeySize + 9]byte
	copy(msg[:KeySize], n.key[:])
	binary.BigEndian.PutUint64(msg[KeySize:], right)
	msg[KeySize+8] = index
	copy(msg[KeySize+9:], n.key[:])
	return n.hash(msg[:])
}
