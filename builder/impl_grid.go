// SPDX-License-Identifier: MIT
// Package: frankengrid/builder
//
// impl_grid.go: implementation of GeoGrid(h, w, mode) constructor.
//
// Canonical model:
//   • Full rectangular lattice over nodes laid out by GridNodes (id = y*W + x).
//   • Rook: right and up neighbours per cell. Queen additionally adds both
//     diagonals of every unit square.
//
// Contract:
//   • h ≥ 1 and w ≥ 1 (else ErrTooFewVertices).
//   • g.Order() == h*w (else core.ErrSizeMismatch).
//   • mode ∈ {core.Rook, core.Queen} (else core.ErrUnknownNeighborhood).
//   • Emits edges with cfg.geoWeight / cfg.geoBarrier.
//   • Verifies the emitted count equals h(w-1)+w(h-1) [+2(h-1)(w-1) for Queen],
//     otherwise ErrConstructFailed (e.g. the GEO layer was already populated).
//
// Complexity:
//   • Time: O(h*w) edges emission.
//   • Space: O(1) extra.
//
// Determinism:
//   • Stable edge order: all Right edges (y asc, x asc), then all Up edges,
//     then for Queen the (x,y)-(x+1,y+1) and (x+1,y)-(x,y+1) diagonals per cell.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frankengrid/core"
)

// GeoGrid returns a Constructor that builds the GEO layer of an h×w lattice.
func GeoGrid(h, w int, mode core.Neighborhood) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if h < MinGridDim || w < MinGridDim {
			return fmt.Errorf("%s: h=%d, w=%d (each must be ≥ %d): %w",
				methodGeoGrid, h, w, MinGridDim, ErrTooFewVertices)
		}
		if g.Order() != h*w {
			return fmt.Errorf("%s: order=%d, want h*w=%d: %w",
				methodGeoGrid, g.Order(), h*w, core.ErrSizeMismatch)
		}
		if mode != core.Rook && mode != core.Queen {
			return fmt.Errorf("%s: mode=%d: %w", methodGeoGrid, int(mode), core.ErrUnknownNeighborhood)
		}

		id := func(x, y int) uint32 { return uint32(y*w + x) }
		emitted := 0
		add := func(u, v uint32) error {
			added, err := g.AddGeoEdge(u, v, cfg.geoWeight, cfg.geoBarrier)
			if err != nil {
				return fmt.Errorf("%s: %w", methodGeoGrid, err)
			}
			if added {
				emitted++
			}
			return nil
		}

		// 2) Right neighbours.
		for y := 0; y < h; y++ {
			for x := 0; x+1 < w; x++ {
				if err := add(id(x, y), id(x+1, y)); err != nil {
					return err
				}
			}
		}
		// 3) Up neighbours.
		for y := 0; y+1 < h; y++ {
			for x := 0; x < w; x++ {
				if err := add(id(x, y), id(x, y+1)); err != nil {
					return err
				}
			}
		}
		// 4) Diagonals (Queen only).
		if mode == core.Queen {
			for y := 0; y+1 < h; y++ {
				for x := 0; x+1 < w; x++ {
					if err := add(id(x, y), id(x+1, y+1)); err != nil {
						return err
					}
					if err := add(id(x+1, y), id(x, y+1)); err != nil {
						return err
					}
				}
			}
		}
		g.MarkGeoLayer()

		// 5) Post-condition: exact lattice edge count.
		if want := GeoGridEdgeCount(h, w, mode); emitted != want {
			return fmt.Errorf("%s: emitted %d edges, want %d: %w", methodGeoGrid, emitted, want, ErrConstructFailed)
		}

		return nil
	}
}

// GeoGridEdgeCount returns the GEO edge count of a full h×w lattice:
// h(w-1) + w(h-1) for Rook, plus 2(h-1)(w-1) for Queen.
func GeoGridEdgeCount(h, w int, mode core.Neighborhood) int {
	if h < 1 || w < 1 {
		return 0
	}
	n := h*(w-1) + w*(h-1)
	if mode == core.Queen {
		n += 2 * (h - 1) * (w - 1)
	}
	return n
}
