// SPDX-License-Identifier: MIT
// Package: frankengrid/builder
//
// impl_nodes.go: node-set constructors.
//
// Contract:
//   • Node constructors run on an EMPTY graph (else core.ErrSizeMismatch), so that
//     ids stay exactly [0, N) in emission order.
//   • GridNodes: H ≥ 1 and W ≥ 1; node (x, y) gets id y*W+x.
//   • CoordinateNodes: len(xs) == len(ys) ≥ 1; ids follow slice order.
//   • MaskNodes: land cells of a gridgraph mask in row-major order; ≥ 1 land cell.
//
// Complexity:
//   • O(N) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frankengrid/core"
	"github.com/katalvlaran/frankengrid/gridgraph"
)

// GridNodes returns a Constructor that adds h*w lattice nodes, row-major.
func GridNodes(h, w int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if h < MinGridDim || w < MinGridDim {
			return fmt.Errorf("%s: h=%d, w=%d (each must be ≥ %d): %w",
				methodGridNodes, h, w, MinGridDim, ErrTooFewVertices)
		}
		if g.Order() != 0 {
			return fmt.Errorf("%s: graph already has %d nodes: %w", methodGridNodes, g.Order(), core.ErrSizeMismatch)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g.AddNode(float64(x), float64(y))
			}
		}

		return nil
	}
}

// CoordinateNodes returns a Constructor that adds one node per (xs[i], ys[i]).
// The slices are read when the constructor runs; coordinates are not validated
// here (GeoInferred does that).
func CoordinateNodes(xs, ys []float64) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if len(xs) != len(ys) {
			return fmt.Errorf("%s: len(xs)=%d != len(ys)=%d: %w",
				methodCoordinateNodes, len(xs), len(ys), core.ErrSizeMismatch)
		}
		if len(xs) == 0 {
			return fmt.Errorf("%s: no coordinates: %w", methodCoordinateNodes, ErrTooFewVertices)
		}
		if g.Order() != 0 {
			return fmt.Errorf("%s: graph already has %d nodes: %w", methodCoordinateNodes, g.Order(), core.ErrSizeMismatch)
		}
		for i := range xs {
			g.AddNode(xs[i], ys[i])
		}

		return nil
	}
}

// MaskNodes returns a Constructor that adds one node per land cell of gg,
// in row-major order, at integer coordinates (x, y).
func MaskNodes(gg *gridgraph.GridGraph) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if gg == nil {
			return fmt.Errorf("%s: nil mask: %w", methodMaskNodes, ErrConstructFailed)
		}
		cells := gg.LandCells()
		if len(cells) == 0 {
			return fmt.Errorf("%s: mask has no land cells: %w", methodMaskNodes, ErrTooFewVertices)
		}
		if g.Order() != 0 {
			return fmt.Errorf("%s: graph already has %d nodes: %w", methodMaskNodes, g.Order(), core.ErrSizeMismatch)
		}
		for _, c := range cells {
			g.AddNode(float64(c[0]), float64(c[1]))
		}

		return nil
	}
}
