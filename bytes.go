package permiter

import "encoding/binary"

// KeySize is the length in bytes of a Feistel network key.
const KeySize = 32

// Key is the secret that selects one permutation out of the family. It is
// a value type: a Network keeps its own copy, never a reference to caller
// memory.
type Key [KeySize]byte

// EncodeUint64 returns v as 8 bytes in big-endian order, most significant
// byte first. EncodeUint64(42) is [0 0 0 0 0 0 0 0x2A].
func EncodeUint64(v uint64) [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b
}

// KeyFromSeed embeds seed, big-endian, into the first 8 bytes of an
// otherwise zero-filled key. The remaining 24 bytes stay zero, so a
// seed-derived key carries 64 bits of entropy rather than 256. That is
// plenty for reproducible shuffles; callers wanting a full-entropy key
// should use NewRandomKey or supply their own.
func KeyFromSeed(seed uint64) Key {
	var k Key
	b := EncodeUint64(seed)
	copy(k[:8], b[:])
	return k
}
