package pipeline

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/frankengrid/core"
	"github.com/katalvlaran/frankengrid/district"
)

// Dataset is the output of one Generate call.
type Dataset struct {
	RunID  uuid.UUID
	Config Config
	Graph  *core.Graph
	// Nodes carries coordinates, opinion (in Opinion.Domain), district and
	// seed flag per node id.
	Nodes          []core.Node
	Opinions       []float64
	OpinionsScaled []float64
	Seeds          []uint32
	// SeedStrategy is the strategy that produced Seeds; it differs from the
	// configured one after a coarse fallback.
	SeedStrategy string
	Districts    *district.Result
	BridgedCells int
	// Contiguous reports whether every district induces a connected GEO subgraph.
	Contiguous bool
}

// Tables is the flat column export consumed downstream. SOCIAL ties appear in
// both orientations.
type Tables struct {
	NodeID        []uint32
	X, Y          []float64
	Opinion       []float64
	OpinionScaled []float64
	District      []int32
	IsSeed        []bool

	GeoU, GeoV []uint32
	GeoWeight  []float64
	GeoBarrier []bool

	SocialU, SocialV []uint32
	SocialWeight     []float64
}

// Tables flattens the dataset. Slices are fresh copies.
func (ds *Dataset) Tables() Tables {
	nt := ds.Graph.NodeTable()
	gt := ds.Graph.GeoTable()
	st := ds.Graph.SocialTable(true)

	n := len(ds.Nodes)
	t := Tables{
		NodeID:        nt.ID,
		X:             nt.X,
		Y:             nt.Y,
		Opinion:       make([]float64, n),
		OpinionScaled: append([]float64(nil), ds.OpinionsScaled...),
		District:      make([]int32, n),
		IsSeed:        make([]bool, n),
		GeoU:          gt.U,
		GeoV:          gt.V,
		GeoWeight:     gt.Weight,
		GeoBarrier:    gt.Barrier,
		SocialU:       st.U,
		SocialV:       st.V,
		SocialWeight:  st.Weight,
	}
	for i, nd := range ds.Nodes {
		t.Opinion[i] = nd.Opinion
		t.District[i] = nd.District
		t.IsSeed[i] = nd.IsSeed
	}
	return t
}
