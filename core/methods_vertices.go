// File: methods_vertices.go
// Role: node lifecycle and coordinate queries.
// Determinism:
//   - Ids are assigned densely in insertion order; no id is ever reused.

package core

import (
	"fmt"
	"math"
)

// AddNode appends a node at (x, y) and returns its id.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(x, y float64) uint32 {
	id := uint32(len(g.xs))
	g.xs = append(g.xs, x)
	g.ys = append(g.ys, y)
	g.geoAdj = append(g.geoAdj, nil)
	g.socialAdj = append(g.socialAdj, nil)
	return id
}

// Order returns the number of nodes N.
func (g *Graph) Order() int {
	return len(g.xs)
}

// HasNode reports whether id lies in [0, N).
func (g *Graph) HasNode(id uint32) bool {
	return int(id) < len(g.xs)
}

// Position returns the coordinate of id.
func (g *Graph) Position(id uint32) (x, y float64, err error) {
	if !g.HasNode(id) {
		return 0, 0, fmt.Errorf("Position(%d): %w", id, ErrNodeOutOfRange)
	}
	return g.xs[id], g.ys[id], nil
}

// IntPosition rounds the coordinate of id to the integer lattice. It fails with
// ErrNonIntegerCoordinate when either axis is farther than tol from its
// rounded value, or is not finite.
func (g *Graph) IntPosition(id uint32, tol float64) (x, y int, err error) {
	fx, fy, err := g.Position(id)
	if err != nil {
		return 0, 0, err
	}
	rx, ry := math.RoundToEven(fx), math.RoundToEven(fy)
	if math.IsNaN(fx) || math.IsNaN(fy) || math.IsInf(fx, 0) || math.IsInf(fy, 0) ||
		math.Abs(fx-rx) > tol || math.Abs(fy-ry) > tol {
		return 0, 0, fmt.Errorf("IntPosition(%d): (%g,%g): %w", id, fx, fy, ErrNonIntegerCoordinate)
	}
	return int(rx), int(ry), nil
}

// Nodes returns a snapshot of every node with Opinion zero and District
// Unassigned. Callers attach synthesized values to the copy.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.xs))
	for i := range out {
		out[i] = Node{ID: uint32(i), X: g.xs[i], Y: g.ys[i], District: Unassigned}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of all coordinates.
// ok is false on an empty graph.
func (g *Graph) Bounds() (minX, maxX, minY, maxY float64, ok bool) {
	if len(g.xs) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, maxX, minY, maxY = g.xs[0], g.xs[0], g.ys[0], g.ys[0]
	for i := 1; i < len(g.xs); i++ {
		minX = math.Min(minX, g.xs[i])
		maxX = math.Max(maxX, g.xs[i])
		minY = math.Min(minY, g.ys[i])
		maxY = math.Max(maxY, g.ys[i])
	}
	return minX, maxX, minY, maxY, true
}
