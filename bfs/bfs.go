package bfs

import (
	"fmt"

	"github.com/katalvlaran/frankengrid/core"
)

// BFS explores the GEO layer of g from start. Neighbours are expanded in
// adjacency (insertion) order, so the result is reproducible.
//
// Errors: ErrGraphNil, core.ErrNodeOutOfRange for a bad start,
// core.ErrNoGeoLayer.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start uint32, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("BFS(%d): %w", start, core.ErrNodeOutOfRange)
	}
	if !g.HasGeoLayer() {
		return nil, fmt.Errorf("BFS(%d): %w", start, core.ErrNoGeoLayer)
	}

	n := g.Order()
	res := &BFSResult{
		Start: start,
		Order: make([]uint32, 0, n),
		Depth: make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = Unreached
	}

	// res.Order doubles as the FIFO queue: ids are appended when discovered
	// and consumed from head.
	res.Depth[start] = 0
	res.Order = append(res.Order, start)
	for head := 0; head < len(res.Order); head++ {
		u := res.Order[head]
		d := res.Depth[u]
		for _, v := range g.GeoNeighbors(u) {
			if res.Depth[v] != Unreached || (o.keepEdge != nil && !o.keepEdge(u, v)) {
				continue
			}
			res.Depth[v] = d + 1
			res.Order = append(res.Order, v)
		}
	}
	return res, nil
}
