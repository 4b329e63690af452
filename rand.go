package permiter

import (
	"crypto/rand"
	"fmt"
	"io"
)

// NewRandomKey draws a full-entropy key from r. If r is nil, the
// process-wide crypto/rand.Reader is used.
func NewRandomKey(r io.Reader) (Key, error) {
	if r == nil {
		r = rand.Reader
	}
	var k Key
	if _, err := io.ReadFull(r, k[:]); err != nil {
		return Key{}, fmt.Errorf("permiter: read random key: %w", err)
	}
	return k, nil
}
