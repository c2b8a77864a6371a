package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/frankengrid/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// 2×2 lattice coordinates, no edges yet
	s.g = core.NewGraph()
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			s.g.AddNode(float64(x), float64(y))
		}
	}
}

func (s *GraphSuite) TestDenseIDs() {
	require := require.New(s.T())
	require.Equal(4, s.g.Order())
	for i, n := range s.g.Nodes() {
		require.Equal(uint32(i), n.ID)
		require.Equal(core.Unassigned, n.District)
	}
	require.True(s.g.HasNode(3))
	require.False(s.g.HasNode(4))
}

func (s *GraphSuite) TestGeoEdgeCanonicalAndDedup() {
	require := require.New(s.T())
	require.False(s.g.HasGeoLayer())

	added, err := s.g.AddGeoEdge(1, 0, 1.0, false)
	require.NoError(err)
	require.True(added)

	added, err = s.g.AddGeoEdge(0, 1, 2.0, true)
	require.NoError(err)
	require.False(added, "second insertion of {0,1} must be a no-op")

	edges := s.g.GeoEdges()
	require.Len(edges, 1)
	require.Equal(core.GeoEdge{U: 0, V: 1, Weight: 1.0}, edges[0])
	require.True(s.g.HasGeoLayer())
	require.True(s.g.HasGeoEdge(1, 0))
	require.Equal(1, s.g.GeoDegree(0))
	require.Equal(1, s.g.GeoDegree(1))
	require.Equal(0, s.g.GeoDegree(3))
}

func (s *GraphSuite) TestGeoEdgeErrors() {
	require := require.New(s.T())
	_, err := s.g.AddGeoEdge(0, 9, 1, false)
	require.ErrorIs(err, core.ErrNodeOutOfRange)
	_, err = s.g.AddGeoEdge(2, 2, 1, false)
	require.ErrorIs(err, core.ErrLoopNotAllowed)
}

func (s *GraphSuite) TestSocialEdgesAndArcs() {
	require := require.New(s.T())
	require.NoError(s.g.AddSocialEdge(2, 0, 1.5))
	require.NoError(s.g.AddSocialEdge(3, 0, 1.5))
	require.ErrorIs(s.g.AddSocialEdge(0, 2, 1.5), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(s.g.AddSocialEdge(1, 1, 1.5), core.ErrLoopNotAllowed)

	require.Equal(2, s.g.SocialSize())
	require.Equal(2, s.g.SocialDegree(0))
	require.False(s.g.HasGeoLayer(), "social edges must not touch the geo layer")

	arcs := s.g.SocialArcs()
	require.Equal([]core.SocialEdge{
		{U: 2, V: 0, Weight: 1.5}, {U: 0, V: 2, Weight: 1.5},
		{U: 3, V: 0, Weight: 1.5}, {U: 0, V: 3, Weight: 1.5},
	}, arcs)
}

func (s *GraphSuite) TestTables() {
	require := require.New(s.T())
	_, _ = s.g.AddGeoEdge(0, 1, 1, false)
	_, _ = s.g.AddGeoEdge(0, 2, 1, true)
	require.NoError(s.g.AddSocialEdge(3, 1, 1))

	nt := s.g.NodeTable()
	require.Equal([]uint32{0, 1, 2, 3}, nt.ID)
	require.Equal([]float64{0, 1, 0, 1}, nt.X)
	require.Equal([]float64{0, 0, 1, 1}, nt.Y)

	gt := s.g.GeoTable()
	require.Equal([]uint32{0, 0}, gt.U)
	require.Equal([]uint32{1, 2}, gt.V)
	require.Equal([]bool{false, true}, gt.Barrier)

	require.Len(s.g.SocialTable(false).U, 1)
	st := s.g.SocialTable(true)
	require.Equal([]uint32{3, 1}, st.U)
	require.Equal([]uint32{1, 3}, st.V)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestIntPosition(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(2.0000001, 3)
	g.AddNode(0.5, 1)

	x, y, err := g.IntPosition(0, 1e-6)
	require.NoError(t, err)
	require.Equal(t, 2, x)
	require.Equal(t, 3, y)

	_, _, err = g.IntPosition(1, 1e-6)
	if !errors.Is(err, core.ErrNonIntegerCoordinate) {
		t.Fatalf("IntPosition(0.5): want ErrNonIntegerCoordinate, got %v", err)
	}
	_, _, err = g.IntPosition(7, 1e-6)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestParseNeighborhood(t *testing.T) {
	cases := []struct {
		in      string
		want    core.Neighborhood
		offsets int
		err     error
	}{
		{"rook", core.Rook, 4, nil},
		{" Queen ", core.Queen, 8, nil},
		{"bishop", core.Rook, 4, core.ErrUnknownNeighborhood},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := core.ParseNeighborhood(tc.in)
			if !errors.Is(err, tc.err) {
				t.Fatalf("ParseNeighborhood(%q) error = %v; want %v", tc.in, err, tc.err)
			}
			require.Equal(t, tc.want, got)
			require.Len(t, got.Offsets(), tc.offsets)
		})
	}
}

func TestBounds(t *testing.T) {
	g := core.NewGraph()
	_, _, _, _, ok := g.Bounds()
	require.False(t, ok)
	g.AddNode(3, -1)
	g.AddNode(-2, 4)
	minX, maxX, minY, maxY, ok := g.Bounds()
	require.True(t, ok)
	require.Equal(t, []float64{-2, 3, -1, 4}, []float64{minX, maxX, minY, maxY})
}

func TestNewRand_Determinism(t *testing.T) {
	a, b := core.NewRand(42), core.NewRand(42)
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	// seed 0 maps to DefaultSeed
	require.Equal(t, core.NewRand(core.DefaultSeed).Uint64(), core.NewRand(0).Uint64())
}

func TestDeriveSeed_Streams(t *testing.T) {
	s1 := core.DeriveSeed(42, 1)
	s2 := core.DeriveSeed(42, 2)
	require.NotEqual(t, s1, s2)
	require.Equal(t, s1, core.DeriveSeed(42, 1))
}
