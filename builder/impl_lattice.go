// SPDX-License-Identifier: MIT
// Package: frankengrid/builder
//
// impl_lattice.go: implementation of GeoInferred(mode) constructor.
//
// Canonical model:
//   • Works for arbitrary node sets (masked lattices, cropped grids).
//   • Every coordinate must round to the integer lattice within cfg.coordTol.
//   • Neighbours are found by probing mode.Offsets() through a coordinate→id map.
//
// Contract:
//   • g.Order() ≥ 1 (else ErrTooFewVertices).
//   • Non-integer-like, non-finite or duplicated coordinates ⇒ ErrBadCoordinates
//     (the core cause is kept in the chain).
//   • An edge {u, v} is emitted only from its lower endpoint (u < v).
//   • The GEO layer is marked built even when no edge exists.
//
// Complexity:
//   • Time: O(N·d), d = 4 or 8.
//   • Space: O(N) for the coordinate index.
//
// Determinism:
//   • u ascends by id; offsets are probed in mode.Offsets() order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frankengrid/core"
)

// GeoInferred returns a Constructor that infers GEO adjacency from coordinates.
func GeoInferred(mode core.Neighborhood) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Order()
		if n < 1 {
			return fmt.Errorf("%s: empty graph: %w", methodGeoInferred, ErrTooFewVertices)
		}
		if mode != core.Rook && mode != core.Queen {
			return fmt.Errorf("%s: mode=%d: %w", methodGeoInferred, int(mode), core.ErrUnknownNeighborhood)
		}

		// 1) Round and index every coordinate.
		pos := make([][2]int, n)
		index := make(map[[2]int]uint32, n)
		for i := 0; i < n; i++ {
			u := uint32(i)
			x, y, err := g.IntPosition(u, cfg.coordTol)
			if err != nil {
				return fmt.Errorf("%s: %w: %w", methodGeoInferred, ErrBadCoordinates, err)
			}
			key := [2]int{x, y}
			if prev, dup := index[key]; dup {
				return fmt.Errorf("%s: nodes %d and %d share (%d,%d): %w",
					methodGeoInferred, prev, u, x, y, ErrBadCoordinates)
			}
			index[key] = u
			pos[i] = key
		}

		// 2) Probe offsets in id order; accept only u < v.
		offsets := mode.Offsets()
		for i := 0; i < n; i++ {
			u := uint32(i)
			for _, d := range offsets {
				v, ok := index[[2]int{pos[i][0] + d[0], pos[i][1] + d[1]}]
				if !ok || u >= v {
					continue
				}
				if _, err := g.AddGeoEdge(u, v, cfg.geoWeight, cfg.geoBarrier); err != nil {
					return fmt.Errorf("%s: %w", methodGeoInferred, err)
				}
			}
		}
		g.MarkGeoLayer()

		return nil
	}
}
