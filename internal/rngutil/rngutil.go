// Package rngutil holds dynconn's deterministic random-stream helpers: New
// seeds a math/rand source directly (TabularHash and the cmd/dynconn driver
// use it), and DeriveSeed/Derive mix a parent seed and a stream identifier
// into an independent seed using a SplitMix64-style stream-derivation idiom.
//
// Determinism is the whole point: the same (seed, operation sequence) must
// reproduce bit-for-bit, so every derived stream is a pure function of
// (parentSeed, streamID) rather than of wall-clock time.
package rngutil

import "math/rand"

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche finalizer, giving well-distributed,
// uncorrelated seeds for independent substreams. O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// New returns a deterministic *rand.Rand seeded directly from seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Derive returns an independent deterministic RNG stream based on a parent
// seed and a stream identifier, e.g. Derive(rootSeed, level*boostCount+boost)
// for one member of a per-(level,boost) hash family.
func Derive(parentSeed int64, stream uint64) *rand.Rand {
	return New(DeriveSeed(parentSeed, stream))
}
