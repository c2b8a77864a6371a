// SPDX-License-Identifier: MIT
// Package: frankengrid/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Apply(g, bopts, cons...) runs further constructors on an existing graph, so that a
//     later stage (SOCIAL) can use its own RNG stream.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Typical composition: BuildGraph(nil, GridNodes(H, W), GeoGrid(H, W, core.Rook)).
//   - Use WithSeed(...) to freeze the stochastic SocialBA path.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frankengrid/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder and core sentinels (ErrTooFewVertices, core.ErrSizeMismatch, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := apply(methodBuildGraph, g, bopts, cons); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply resolves bopts and runs cons against an existing graph.
// On error the graph may hold the partial result of the failing constructor.
// Complexity: as BuildGraph.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", methodApply, ErrConstructFailed)
	}
	return apply(methodApply, g, bopts, cons)
}

func apply(method string, g *core.Graph, bopts []BuilderOption, cons []Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		// Reject a nil constructor (programmer error) instead of panicking.
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// =============================================================================
// Factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Node constructors (impl_nodes.go):
//
//	GridNodes(h, w int) Constructor             // ids y*W+x, coordinates (x, y)
//	CoordinateNodes(xs, ys []float64) Constructor
//	MaskNodes(gg *gridgraph.GridGraph) Constructor
//
// GEO constructors:
//
//	GeoGrid(h, w int, mode core.Neighborhood) Constructor   // impl_grid.go
//	GeoInferred(mode core.Neighborhood) Constructor         // impl_lattice.go
//
// SOCIAL constructors (impl_social_ba.go):
//
//	SocialBA(m int) Constructor
