package district_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frankengrid/builder"
	"github.com/katalvlaran/frankengrid/core"
	"github.com/katalvlaran/frankengrid/district"
)

func lattice(t testing.TB, h, w int, mode core.Neighborhood) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.GridNodes(h, w), builder.GeoGrid(h, w, mode))
	require.NoError(t, err)
	return g
}

// twoIslands is {0,1} and {2,3} with no GEO edge between them.
func twoIslands(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		builder.CoordinateNodes([]float64{0, 1, 5, 6}, []float64{0, 0, 0, 0}),
		builder.GeoInferred(core.Rook))
	require.NoError(t, err)
	return g
}

func TestGrow_Partition(t *testing.T) {
	g := lattice(t, 6, 6, core.Rook)
	seeds := []uint32{0, 17, 35}
	res, err := district.Grow(g, seeds, core.NewRand(42))
	require.NoError(t, err)
	require.False(t, res.Degenerate())
	require.Len(t, res.Labels, 36)

	for j, s := range seeds {
		require.Equal(t, int32(j), res.Labels[s], "seed keeps its own label")
	}
	sum := 0
	for _, n := range res.Sizes() {
		require.Positive(t, n)
		sum += n
	}
	require.Equal(t, 36, sum)

	ok, err := district.Contiguous(g, res.Labels, len(seeds))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestGrow_Determinism(t *testing.T) {
	g := lattice(t, 8, 9, core.Queen)
	seeds := []uint32{3, 20, 40, 55, 61, 70}
	a, err := district.Grow(g, seeds, core.NewRand(7))
	require.NoError(t, err)
	b, err := district.Grow(g, seeds, core.NewRand(7))
	require.NoError(t, err)
	require.Equal(t, a.Labels, b.Labels)
}

func TestGrow_Golden(t *testing.T) {
	g := lattice(t, 6, 6, core.Rook)
	res, err := district.Grow(g, []uint32{0, 17, 35}, core.NewRand(42))
	require.NoError(t, err)
	require.Equal(t, []int32{
		0, 0, 0, 0, 0, 1,
		0, 0, 0, 2, 2, 1,
		0, 0, 2, 2, 1, 1,
		0, 2, 2, 2, 2, 1,
		2, 2, 2, 2, 2, 2,
		2, 2, 2, 2, 2, 2,
	}, res.Labels)
	require.Empty(t, res.Fallbacks)
}

func TestGrow_Fallbacks(t *testing.T) {
	g := twoIslands(t)
	res, err := district.Grow(g, []uint32{0}, core.NewRand(1))
	require.NoError(t, err)
	require.Equal(t, []int32{0, 0, 0, 0}, res.Labels)
	require.Equal(t, []district.FallbackEvent{
		{Kind: district.FallbackNearestSeed, Node: 2, District: 0, Via: 0, Assigned: 2},
		{Kind: district.FallbackAdopt, Node: 3, District: 0, Via: 2, Assigned: 3},
	}, res.Fallbacks)
	require.Equal(t, "nearest-seed", res.Fallbacks[0].Kind.String())

	ok, err := district.Contiguous(g, res.Labels, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = district.Grow(g, []uint32{0}, core.NewRand(1), district.WithRequireConnected())
	require.ErrorIs(t, err, district.ErrDisconnected)
}

func TestGrow_Errors(t *testing.T) {
	g := lattice(t, 3, 3, core.Rook)
	bare := core.NewGraph()
	bare.AddNode(0, 0)

	cases := []struct {
		name  string
		g     *core.Graph
		seeds []uint32
		err   error
	}{
		{"no geo", bare, []uint32{0}, core.ErrNoGeoLayer},
		{"no seeds", g, nil, district.ErrBadSeeds},
		{"out of range", g, []uint32{0, 9}, district.ErrBadSeeds},
		{"repeated", g, []uint32{4, 4}, district.ErrBadSeeds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := district.Grow(tc.g, tc.seeds, core.NewRand(1))
			if !errors.Is(err, tc.err) {
				t.Fatalf("Grow error = %v; want %v", err, tc.err)
			}
		})
	}
	_, err := district.Grow(g, []uint32{0}, nil)
	require.ErrorIs(t, err, district.ErrNeedRandSource)
}

func TestContiguous_Errors(t *testing.T) {
	g := lattice(t, 2, 2, core.Rook)
	_, err := district.Contiguous(g, []int32{0, 0}, 1)
	require.ErrorIs(t, err, core.ErrSizeMismatch)
	_, err = district.Contiguous(g, []int32{0, 0, 0, 3}, 2)
	require.ErrorIs(t, err, district.ErrBadLabels)

	// diagonal split of a rook 2x2 is not contiguous; an empty district neither
	ok, err := district.Contiguous(g, []int32{0, 1, 1, 0}, 2)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = district.Contiguous(g, []int32{0, 0, 0, 0}, 2)
	require.NoError(t, err)
	require.False(t, ok)
}

// A district is contiguous only through its own members.
func TestContiguous(t *testing.T) {
	g := lattice(t, 3, 3, core.Rook)
	ok, err := district.Contiguous(g, []int32{
		0, 1, 0,
		0, 1, 0,
		0, 0, 0,
	}, 2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = district.Contiguous(g, []int32{
		0, 1, 0,
		0, 1, 0,
		1, 1, 1,
	}, 2)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAttach(t *testing.T) {
	g := lattice(t, 1, 3, core.Rook)
	res, err := district.Grow(g, []uint32{0, 2}, core.NewRand(1))
	require.NoError(t, err)
	nodes := g.Nodes()
	require.NoError(t, district.Attach(nodes, res))
	require.True(t, nodes[0].IsSeed)
	require.False(t, nodes[1].IsSeed)
	require.Equal(t, int32(1), nodes[2].District)
}

// TestGrow_Properties: every node labelled in [0,k), seeds keep their labels,
// no fallback and contiguity on full lattices.
func TestGrow_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("growth on a full lattice is a contiguous k-partition", prop.ForAll(
		func(seed uint64, h, w, k int) bool {
			if k > h*w {
				k = h * w
			}
			g := lattice(t, h, w, core.Rook)
			rng := core.NewRand(seed)
			perm := rng.Perm(h * w)
			seeds := make([]uint32, k)
			for j := range seeds {
				seeds[j] = uint32(perm[j])
			}
			res, err := district.Grow(g, seeds, rng)
			if err != nil || res.Degenerate() {
				return false
			}
			for _, l := range res.Labels {
				if l < 0 || int(l) >= k {
					return false
				}
			}
			for j, s := range seeds {
				if res.Labels[s] != int32(j) {
					return false
				}
			}
			ok, err := district.Contiguous(g, res.Labels, k)
			return err == nil && ok
		},
		gen.UInt64(),
		gen.IntRange(1, 8),
		gen.IntRange(1, 8),
		gen.IntRange(1, 6),
	))

	properties.TestingRun(t)
}
