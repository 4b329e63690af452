package permiter

import (
	"fmt"
	"testing"

	"gotest.tools/v3/assert"
)

func TestNetworkWidth(t *testing.T) {
	cases := []struct {
		max   uint64
		width int
	}{
		{1, 2},
		{2, 2},
		{3, 2},
		{4, 4},
		{10, 4},
		{16, 6},
		{1000, 10},
		{1 << 16, 18},
	}
	for _, tc := range cases {
		n, err := NewNetworkWithSeed(tc.max, 1)
		assert.NilError(t, err)
		assert.Equal(t, n.Width(), tc.width, "max=%d", tc.max)
	}
}

func TestNetworkBijective(t *testing.T) {
	for _, max := range []uint64{1, 3, 10, 100, 1000, 1 << 15} {
		t.Run(fmt.Sprintf("max=%d", max), func(t *testing.T) {
			t.Parallel()
			n, err := NewNetworkWithSeed(max, 12345)
			assert.NilError(t, err)
			domain := uint64(1) << n.Width()
			seen := make(map[uint64]uint64, domain)
			for x := uint64(0); x < domain; x++ {
				out := n.Permute(x)
				assert.Assert(t, out < domain,
					"output %d outside domain [0, %d)", out, domain)
				if other, ok := seen[out]; ok {
					t.Fatalf("collision: %d and %d both permute to %d", other, x, out)
				}
				seen[out] = x
			}
			assert.Equal(t, uint64(len(seen)), domain)
		})
	}
}

// The bijection must hold for any round function, so swapping the hash
// cannot break it.
func TestNetworkBijectiveBLAKE2b(t *testing.T) {
	n, err := NewNetworkWithSeed(1000, 12345, WithRoundHash(HashBLAKE2b))
	assert.NilError(t, err)
	domain := uint64(1) << n.Width()
	seen := make(map[uint64]bool, domain)
	for x := uint64(0); x < domain; x++ {
		seen[n.Permute(x)] = true
	}
	assert.Equal(t, uint64(len(seen)), domain)
}

func TestNetworkDeterministic(t *testing.T) {
	key := KeyFromSeed(99)
	n1, err := NewNetworkWithKey(1000, key)
	assert.NilError(t, err)
	n2, err := NewNetworkWithSeed(1000, 99)
	assert.NilError(t, err)
	for x := uint64(0); x < 1024; x++ {
		assert.Equal(t, n1.Permute(x), n2.Permute(x), "x=%d", x)
	}
}

func TestNetworkKeyDivergence(t *testing.T) {
	const max = 1 << 15
	n1, err := NewNetwork(max)
	assert.NilError(t, err)
	n2, err := NewNetwork(max)
	assert.NilError(t, err)

	numCollisions := 0
	domain := uint64(1) << n1.Width()
	for x := uint64(0); x < domain; x++ {
		if n1.Permute(x) == n2.Permute(x) {
			numCollisions++
		}
	}
	t.Log("NumCollisions", numCollisions)
	if numCollisions > 10 {
		t.Fatal("Too many collisions")
	}
}

func TestNetworkZeroMax(t *testing.T) {
	_, err := NewNetwork(0)
	assert.ErrorIs(t, err, ErrZeroMax)
	_, err = NewNetworkWithSeed(0, 1)
	assert.ErrorIs(t, err, ErrZeroMax)
	_, err = NewNetworkWithKey(0, Key{})
	assert.ErrorIs(t, err, ErrZeroMax)
}

func BenchmarkNetwork_Permute(b *testing.B) {
	b.ReportAllocs()
	n, err := NewNetworkWithSeed(1<<16, 1)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		n.Permute(1234)
	}
}

func BenchmarkNetwork_PermuteBLAKE2b(b *testing.B) {
	b.ReportAllocs()
	n, err := NewNetworkWithSeed(1<<16, 1, WithRoundHash(HashBLAKE2b))
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		n.Permute(1234)
	}
}
