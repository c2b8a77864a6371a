package bfs

import (
	"fmt"

	"github.com/katalvlaran/frankengrid/core"
)

// Components returns the connected components of the GEO subgraph induced by
// the nodes for which keep returns true (all nodes when keep is nil).
// Components are ordered by their lowest node id; each lists its nodes in
// BFS discovery order.
//
// Complexity: O(V + E) time, O(V) memory.
func Components(g *core.Graph, keep func(id uint32) bool) ([][]uint32, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasGeoLayer() {
		return nil, fmt.Errorf("bfs: Components: %w", core.ErrNoGeoLayer)
	}
	if keep == nil {
		keep = func(uint32) bool { return true }
	}

	n := g.Order()
	seen := make([]bool, n)
	var comps [][]uint32
	for i := 0; i < n; i++ {
		root := uint32(i)
		if seen[root] || !keep(root) {
			continue
		}
		seen[root] = true
		comp := []uint32{root}
		for head := 0; head < len(comp); head++ {
			for _, v := range g.GeoNeighbors(comp[head]) {
				if !seen[v] && keep(v) {
					seen[v] = true
					comp = append(comp, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// Connected reports whether the whole GEO layer is a single component.
// An empty graph is not connected.
func Connected(g *core.Graph) (bool, error) {
	comps, err := Components(g, nil)
	if err != nil {
		return false, err
	}
	return len(comps) == 1, nil
}
