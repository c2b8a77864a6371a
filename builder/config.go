// SPDX-License-Identifier: MIT
// Package: frankengrid/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng          = nil   (pure/deterministic unless seeded)
//   • geoWeight    = DefaultEdgeWeight
//   • geoBarrier   = false
//   • socialWeight = DefaultEdgeWeight
//   • coordTol     = DefaultCoordTolerance

package builder

import "math/rand/v2"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// GEO edge attributes stamped on every emitted lattice edge.
	geoWeight  float64
	geoBarrier bool

	// SOCIAL edge weight.
	socialWeight float64

	// Tolerance for integer-like coordinates in GeoInferred.
	coordTol float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:          nil,
		geoWeight:    DefaultEdgeWeight,
		geoBarrier:   false,
		socialWeight: DefaultEdgeWeight,
		coordTol:     DefaultCoordTolerance,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
