// File: methods_edges.go
// Role: GEO and SOCIAL edge insertion and adjacency queries.
// Determinism:
//   - Edges are returned in insertion order.
//   - Adjacency lists are appended in insertion order; both endpoints of an
//     edge see each other.
// AI-HINT (file):
//   - GEO edges are canonicalised to U < V; a second insertion of the same
//     unordered pair is a no-op reported by added=false.
//   - SOCIAL edges keep the generator orientation but reject duplicates of the
//     same unordered pair with ErrMultiEdgeNotAllowed.

package core

import "fmt"

// AddGeoEdge inserts the unordered pair {u, v} into the GEO layer.
// Returns added=false when the pair already exists.
// Complexity: O(1) amortized.
func (g *Graph) AddGeoEdge(u, v uint32, weight float64, barrier bool) (added bool, err error) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false, fmt.Errorf("AddGeoEdge(%d,%d): %w", u, v, ErrNodeOutOfRange)
	}
	if u == v {
		return false, fmt.Errorf("AddGeoEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	key := pairKey(u, v)
	if _, dup := g.geoIndex[key]; dup {
		return false, nil
	}
	if u > v {
		u, v = v, u
	}
	g.geoIndex[key] = struct{}{}
	g.geo = append(g.geo, GeoEdge{U: u, V: v, Weight: weight, Barrier: barrier})
	g.geoAdj[u] = append(g.geoAdj[u], v)
	g.geoAdj[v] = append(g.geoAdj[v], u)
	g.geoBuilt = true
	return true, nil
}

// MarkGeoLayer records that a GEO constructor ran even if it produced no
// edges (a 1×1 grid, or isolated masked cells).
func (g *Graph) MarkGeoLayer() { g.geoBuilt = true }

// HasGeoLayer reports whether GEO adjacency has been built.
func (g *Graph) HasGeoLayer() bool { return g.geoBuilt }

// HasGeoEdge reports whether the unordered pair {u, v} is a GEO edge.
func (g *Graph) HasGeoEdge(u, v uint32) bool {
	_, ok := g.geoIndex[pairKey(u, v)]
	return ok
}

// GeoNeighbors returns the GEO neighbours of id in insertion order.
// The returned slice is owned by the graph and must not be modified.
func (g *Graph) GeoNeighbors(id uint32) []uint32 {
	if !g.HasNode(id) {
		return nil
	}
	return g.geoAdj[id]
}

// GeoDegree returns the GEO degree of id (0 for unknown ids).
func (g *Graph) GeoDegree(id uint32) int {
	return len(g.GeoNeighbors(id))
}

// GeoSize returns the number of GEO edges.
func (g *Graph) GeoSize() int { return len(g.geo) }

// GeoEdges returns a copy of the GEO edges in insertion order.
func (g *Graph) GeoEdges() []GeoEdge {
	out := make([]GeoEdge, len(g.geo))
	copy(out, g.geo)
	return out
}

// AddSocialEdge inserts the SOCIAL tie u -> v.
// Complexity: O(1) amortized.
func (g *Graph) AddSocialEdge(u, v uint32, weight float64) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return fmt.Errorf("AddSocialEdge(%d,%d): %w", u, v, ErrNodeOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddSocialEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	key := pairKey(u, v)
	if _, dup := g.socialIndex[key]; dup {
		return fmt.Errorf("AddSocialEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.socialIndex[key] = struct{}{}
	g.social = append(g.social, SocialEdge{U: u, V: v, Weight: weight})
	g.socialAdj[u] = append(g.socialAdj[u], v)
	g.socialAdj[v] = append(g.socialAdj[v], u)
	g.socialBuilt = true
	return nil
}

// HasSocialLayer reports whether any SOCIAL edge was inserted.
func (g *Graph) HasSocialLayer() bool { return g.socialBuilt }

// SocialNeighbors returns the SOCIAL neighbours of id in insertion order.
// The returned slice is owned by the graph and must not be modified.
func (g *Graph) SocialNeighbors(id uint32) []uint32 {
	if !g.HasNode(id) {
		return nil
	}
	return g.socialAdj[id]
}

// SocialDegree returns the SOCIAL degree of id.
func (g *Graph) SocialDegree(id uint32) int {
	return len(g.SocialNeighbors(id))
}

// SocialSize returns the number of undirected SOCIAL edges.
func (g *Graph) SocialSize() int { return len(g.social) }

// SocialEdges returns a copy of the SOCIAL edges in generation order.
func (g *Graph) SocialEdges() []SocialEdge {
	out := make([]SocialEdge, len(g.social))
	copy(out, g.social)
	return out
}

// SocialArcs materialises every SOCIAL edge as two directed arcs, u->v
// immediately followed by v->u.
func (g *Graph) SocialArcs() []SocialEdge {
	out := make([]SocialEdge, 0, 2*len(g.social))
	for _, e := range g.social {
		out = append(out, e, SocialEdge{U: e.V, V: e.U, Weight: e.Weight})
	}
	return out
}
