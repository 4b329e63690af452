// Package permiter iterates over pseudorandom permutations of integer
// ranges in constant space.
//
// A Permutor yields every value in [0, max) exactly once, in a
// key-dependent pseudorandom order, without allocating an array of size
// max and without tracking which values have been seen. The order comes
// from a keyed balanced Feistel network over the smallest even-bit-width
// power-of-two domain covering max; network outputs outside [0, max) are
// discarded, so each emitted value costs on average 2^width/max Permute
// calls — at most about two, since the width is rounded to the nearest
// even bit length. Memory use is O(1) regardless of max.
//
// The Feistel construction is a bijection for any deterministic round
// function, so the no-repeats, no-omissions guarantee does not depend on
// the statistical quality of the round hash. It is a light
// format-preserving mapping, not a vetted cipher; do not rely on it for
// cryptographic security.
package permiter
