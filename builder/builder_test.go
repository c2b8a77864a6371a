// File: builder_test.go
// Package builder_test contains functional tests for the node, GEO and SOCIAL
// constructors, verifying counts, canonical ordering, determinism and errors.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frankengrid/builder"
	"github.com/katalvlaran/frankengrid/core"
	"github.com/katalvlaran/frankengrid/gridgraph"
)

// TestGeoGrid_Counts runs table-driven edge-count checks for full lattices.
func TestGeoGrid_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		h, w  int
		mode  core.Neighborhood
		wantE int
	}{
		{"1x1 rook", 1, 1, core.Rook, 0},
		{"1x5 rook", 1, 5, core.Rook, 4},
		{"3x3 rook", 3, 3, core.Rook, 12},
		{"3x3 queen", 3, 3, core.Queen, 20},
		{"6x6 rook", 6, 6, core.Rook, 60},
		{"8x9 queen", 8, 9, core.Queen, 8*8 + 9*7 + 2*7*8},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, builder.GridNodes(tc.h, tc.w), builder.GeoGrid(tc.h, tc.w, tc.mode))
			require.NoError(t, err)
			require.Equal(t, tc.h*tc.w, g.Order())
			require.Equal(t, tc.wantE, g.GeoSize())
			require.Equal(t, tc.wantE, builder.GeoGridEdgeCount(tc.h, tc.w, tc.mode))
			require.True(t, g.HasGeoLayer())
			for _, e := range g.GeoEdges() {
				require.Less(t, e.U, e.V, "GEO edges must be canonical")
				require.Equal(t, builder.DefaultEdgeWeight, e.Weight)
				require.False(t, e.Barrier)
			}
		})
	}
}

// TestGeoGrid_Order verifies the documented emission order on a 2×2 queen grid.
func TestGeoGrid_Order(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.GridNodes(2, 2), builder.GeoGrid(2, 2, core.Queen))
	require.NoError(t, err)

	got := make([][2]uint32, 0, g.GeoSize())
	for _, e := range g.GeoEdges() {
		got = append(got, [2]uint32{e.U, e.V})
	}
	// right: 0-1, 2-3; up: 0-2, 1-3; diagonals: 0-3, 1-2
	require.Equal(t, [][2]uint32{{0, 1}, {2, 3}, {0, 2}, {1, 3}, {0, 3}, {1, 2}}, got)

	// corner degree 3 under queen
	for id := uint32(0); id < 4; id++ {
		assert.Equal(t, 3, g.GeoDegree(id))
	}
}

// TestGeoGrid_Attributes verifies weight and barrier options are stamped.
func TestGeoGrid_Attributes(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithGeoWeight(2.5), builder.WithBarrierFlag(true)},
		builder.GridNodes(2, 3), builder.GeoGrid(2, 3, core.Rook),
	)
	require.NoError(t, err)
	for _, e := range g.GeoEdges() {
		require.Equal(t, 2.5, e.Weight)
		require.True(t, e.Barrier)
	}
}

// TestGeoGrid_Errors checks sentinel errors for invalid inputs.
func TestGeoGrid_Errors(t *testing.T) {
	tests := []struct {
		name string
		cons []builder.Constructor
		err  error
	}{
		{"zero rows", []builder.Constructor{builder.GridNodes(0, 3)}, builder.ErrTooFewVertices},
		{"size mismatch", []builder.Constructor{builder.GridNodes(2, 2), builder.GeoGrid(3, 3, core.Rook)}, core.ErrSizeMismatch},
		{"bad mode", []builder.Constructor{builder.GridNodes(2, 2), builder.GeoGrid(2, 2, core.Neighborhood(7))}, core.ErrUnknownNeighborhood},
		{"twice", []builder.Constructor{builder.GridNodes(2, 2), builder.GeoGrid(2, 2, core.Rook), builder.GeoGrid(2, 2, core.Rook)}, builder.ErrConstructFailed},
		{"nodes twice", []builder.Constructor{builder.GridNodes(2, 2), builder.GridNodes(2, 2)}, core.ErrSizeMismatch},
		{"nil constructor", []builder.Constructor{nil}, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.cons...)
			if !errors.Is(err, tc.err) {
				t.Fatalf("BuildGraph error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestGeoInferred_MatchesGrid verifies inference reproduces the full lattice.
func TestGeoInferred_MatchesGrid(t *testing.T) {
	for _, mode := range []core.Neighborhood{core.Rook, core.Queen} {
		full, err := builder.BuildGraph(nil, builder.GridNodes(4, 5), builder.GeoGrid(4, 5, mode))
		require.NoError(t, err)
		inf, err := builder.BuildGraph(nil, builder.GridNodes(4, 5), builder.GeoInferred(mode))
		require.NoError(t, err)

		require.Equal(t, full.GeoSize(), inf.GeoSize(), mode.String())
		for _, e := range full.GeoEdges() {
			require.True(t, inf.HasGeoEdge(e.U, e.V), "%s: missing %d-%d", mode, e.U, e.V)
		}
	}
}

// TestGeoInferred_Masked builds a masked lattice with a hole.
//
//	1 1 1
//	1 0 1
func TestGeoInferred_Masked(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 1, 1}, {1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	g, err := builder.BuildGraph(nil, builder.MaskNodes(gg), builder.GeoInferred(core.Rook))
	require.NoError(t, err)

	// ids: 0=(0,0) 1=(1,0) 2=(2,0) 3=(0,1) 4=(2,1)
	require.Equal(t, 5, g.Order())
	require.Equal(t, 4, g.GeoSize())
	require.True(t, g.HasGeoEdge(0, 3))
	require.True(t, g.HasGeoEdge(2, 4))
	require.False(t, g.HasGeoEdge(3, 4))
}

// TestGeoInferred_Isolated marks the layer even without edges.
func TestGeoInferred_Isolated(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		builder.CoordinateNodes([]float64{0, 5}, []float64{0, 5}),
		builder.GeoInferred(core.Queen))
	require.NoError(t, err)
	require.True(t, g.HasGeoLayer())
	require.Zero(t, g.GeoSize())
}

// TestGeoInferred_Errors checks coordinate validation.
func TestGeoInferred_Errors(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
		err    error
	}{
		{"fractional", []float64{0, 0.5}, []float64{0, 0}, builder.ErrBadCoordinates},
		{"duplicate", []float64{1, 1}, []float64{2, 2}, builder.ErrBadCoordinates},
		{"length", []float64{1}, []float64{1, 2}, core.ErrSizeMismatch},
		{"empty", nil, nil, builder.ErrTooFewVertices},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, builder.CoordinateNodes(tc.xs, tc.ys), builder.GeoInferred(core.Rook))
			if !errors.Is(err, tc.err) {
				t.Fatalf("error = %v; want %v", err, tc.err)
			}
		})
	}

	// the core cause stays in the chain
	_, err := builder.BuildGraph(nil,
		builder.CoordinateNodes([]float64{0.25}, []float64{0}),
		builder.GeoInferred(core.Rook))
	require.ErrorIs(t, err, core.ErrNonIntegerCoordinate)

	// a wider tolerance accepts near-integers
	_, err = builder.BuildGraph([]builder.BuilderOption{builder.WithCoordTolerance(0.01)},
		builder.CoordinateNodes([]float64{0.001, 1}, []float64{0, 0}),
		builder.GeoInferred(core.Rook))
	require.NoError(t, err)
}

// TestSocialBA_Counts checks m(N−m) edges and degree bounds.
func TestSocialBA_Counts(t *testing.T) {
	tests := []struct {
		name  string
		n, m  int
		wantE int
	}{
		{"N=20 m=2", 20, 2, 36},
		{"N=36 m=2", 36, 2, 68},
		{"N=2 m=1", 2, 1, 1},
		{"N=4 m=3", 4, 3, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(
				[]builder.BuilderOption{builder.WithSeed(7)},
				builder.CoordinateNodes(make([]float64, tc.n), make([]float64, tc.n)),
				builder.SocialBA(tc.m),
			)
			require.NoError(t, err)
			require.Equal(t, tc.wantE, g.SocialSize())
			require.Equal(t, tc.wantE, builder.SocialBAEdgeCount(tc.n, tc.m))
			require.False(t, g.HasGeoLayer(), "SocialBA must not touch GEO")
			for id := tc.m + 1; id < tc.n; id++ {
				require.GreaterOrEqual(t, g.SocialDegree(uint32(id)), tc.m)
			}
		})
	}
}

// TestSocialBA_StarSeed verifies the initial star edges come first.
func TestSocialBA_StarSeed(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithSocialWeight(0.5)},
		builder.GridNodes(3, 3), builder.SocialBA(2),
	)
	require.NoError(t, err)
	edges := g.SocialEdges()
	require.Equal(t, core.SocialEdge{U: 0, V: 1, Weight: 0.5}, edges[0])
	require.Equal(t, core.SocialEdge{U: 0, V: 2, Weight: 0.5}, edges[1])
	for _, e := range edges[2:] {
		require.Greater(t, e.U, e.V, "later edges run from the new node to an older target")
	}

	require.True(t, g.HasSocialLayer())
	hub := g.SocialNeighbors(0)
	require.GreaterOrEqual(t, len(hub), 2)
	require.Equal(t, []uint32{1, 2}, hub[:2], "star leaves first, in insertion order")
	require.Equal(t, uint32(0), g.SocialNeighbors(1)[0])
	require.Nil(t, g.SocialNeighbors(99))
}

// TestSocialBA_Determinism verifies equal seeds give equal edge lists.
func TestSocialBA_Determinism(t *testing.T) {
	build := func(seed uint64) []core.SocialEdge {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.GridNodes(6, 6), builder.SocialBA(2),
		)
		require.NoError(t, err)
		return g.SocialEdges()
	}
	require.Equal(t, build(42), build(42))
	require.NotEqual(t, build(42), build(43))
}

// TestSocialBA_Errors checks validation order.
func TestSocialBA_Errors(t *testing.T) {
	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	_, err := builder.BuildGraph(seeded, builder.GridNodes(1, 2), builder.SocialBA(0))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(seeded, builder.GridNodes(1, 2), builder.SocialBA(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, builder.GridNodes(2, 2), builder.SocialBA(1))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestApply runs the SOCIAL stage on an existing GEO graph with its own stream.
func TestApply(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.GridNodes(6, 6), builder.GeoGrid(6, 6, core.Rook))
	require.NoError(t, err)
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithRand(core.NewRand(42))}, builder.SocialBA(2)))
	require.Equal(t, 60, g.GeoSize())
	require.Equal(t, 68, g.SocialSize())

	require.ErrorIs(t, builder.Apply(nil, nil), builder.ErrConstructFailed)
}

// TestOptions_Panics verifies option constructors fail fast.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithGeoWeight(-1) })
	assert.Panics(t, func() { builder.WithSocialWeight(-0.5) })
	assert.Panics(t, func() { builder.WithCoordTolerance(0.5) })
	assert.NotPanics(t, func() { builder.WithCoordTolerance(0) })
}
