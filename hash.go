package permiter

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// RoundHash is the keyed-hash collaborator behind the Feistel round
// function. It must be deterministic for the lifetime of a Network; it
// need not be invertible or cryptographically strong, because the network
// is a bijection for any deterministic round function. Any 64-bit hash
// with reasonable avalanche behavior will do.
type RoundHash func(message []byte) uint64

// HashXXH3 is the default round hash. XXH3 is a fast non-cryptographic
// hash with good avalanche behavior, which is all the round function
// requires.
func HashXXH3(message []byte) uint64 {
	return xxh3.Hash(message)
}

// HashBLAKE2b hashes the round message with BLAKE2b-256 and takes the
// first 8 bytes of the digest, big-endian. Slower than HashXXH3; for
// callers who want a cryptographic PRF inside each round, though the
// construction as a whole remains unvetted as a cipher.
func HashBLAKE2b(message []byte) uint64 {
	sum := blake2b.Sum256(message)
	return binary.BigEndian.Uint64(sum[:8])
}
