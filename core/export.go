package core

// GeoTable is the flat column form of the GEO layer.
type GeoTable struct {
	U, V    []uint32
	Weight  []float64
	Barrier []bool
}

// SocialTable is the flat column form of the SOCIAL layer.
type SocialTable struct {
	U, V   []uint32
	Weight []float64
}

// NodeTable is the flat column form of node ids and coordinates.
type NodeTable struct {
	ID   []uint32
	X, Y []float64
}

// NodeTable exports ids and coordinates.
func (g *Graph) NodeTable() NodeTable {
	n := g.Order()
	t := NodeTable{ID: make([]uint32, n), X: make([]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		t.ID[i] = uint32(i)
	}
	copy(t.X, g.xs)
	copy(t.Y, g.ys)
	return t
}

// GeoTable exports the GEO layer, one row per canonical pair.
func (g *Graph) GeoTable() GeoTable {
	m := len(g.geo)
	t := GeoTable{
		U:       make([]uint32, m),
		V:       make([]uint32, m),
		Weight:  make([]float64, m),
		Barrier: make([]bool, m),
	}
	for i, e := range g.geo {
		t.U[i], t.V[i], t.Weight[i], t.Barrier[i] = e.U, e.V, e.Weight, e.Barrier
	}
	return t
}

// SocialTable exports the SOCIAL layer. With arcs=true each tie appears in
// both orientations (see SocialArcs), otherwise once per generated pair.
func (g *Graph) SocialTable(arcs bool) SocialTable {
	edges := g.social
	if arcs {
		edges = g.SocialArcs()
	}
	t := SocialTable{
		U:      make([]uint32, len(edges)),
		V:      make([]uint32, len(edges)),
		Weight: make([]float64, len(edges)),
	}
	for i, e := range edges {
		t.U[i], t.V[i], t.Weight[i] = e.U, e.V, e.Weight
	}
	return t
}
