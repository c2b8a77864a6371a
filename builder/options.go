// SPDX-License-Identifier: MIT
// Package: frankengrid/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/frankengrid/core"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a PCG stream seeded via core.NewRand (seed 0 ⇒ core.DefaultSeed).
// Complexity: O(1) time, O(1) space.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = core.NewRand(seed)
	}
}

// WithGeoWeight sets the weight stamped on every GEO edge.
// Panics on NaN, ±Inf or negative values.
func WithGeoWeight(w float64) BuilderOption {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		panic("builder: WithGeoWeight(w) requires a finite non-negative weight")
	}
	return func(c *builderConfig) {
		c.geoWeight = w
	}
}

// WithBarrierFlag sets the barrier flag stamped on every GEO edge.
func WithBarrierFlag(barrier bool) BuilderOption {
	return func(c *builderConfig) {
		c.geoBarrier = barrier
	}
}

// WithSocialWeight sets the weight stamped on every SOCIAL edge.
// Panics on NaN, ±Inf or negative values.
func WithSocialWeight(w float64) BuilderOption {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		panic("builder: WithSocialWeight(w) requires a finite non-negative weight")
	}
	return func(c *builderConfig) {
		c.socialWeight = w
	}
}

// WithCoordTolerance sets the integer-likeness tolerance used by GeoInferred.
// Panics if tol is negative, NaN, or ≥ 0.5 (rounding would become ambiguous).
func WithCoordTolerance(tol float64) BuilderOption {
	if math.IsNaN(tol) || tol < 0 || tol >= 0.5 {
		panic("builder: WithCoordTolerance(tol) requires 0 ≤ tol < 0.5")
	}
	return func(c *builderConfig) {
		c.coordTol = tol
	}
}
