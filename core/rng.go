// File: rng.go
// Role: the single deterministic RNG factory used by every stochastic stage.
//
// Goals:
//   - Determinism: same seed ⇒ identical draw sequence on every platform.
//   - Encapsulation: no time-based sources anywhere in the module.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Each stage invocation owns its stream.

package core

import "math/rand/v2"

// DefaultSeed is used when callers pass seed==0.
const DefaultSeed uint64 = 1

// pcgStream is the fixed PCG increment selector; only the state seed varies.
const pcgStream uint64 = 0x6a09e667f3bcc909

// NewRand returns a deterministic PCG-backed *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
// Complexity: O(1).
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewPCG(seed, pcgStream))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed with
// a SplitMix64 finalizer, so that per-stage streams are decorrelated even for
// adjacent parents.
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
