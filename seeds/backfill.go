package seeds

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/frankengrid/core"
)

const (
	methodSanitize = "SanitizeAndBackfill"
	methodCoarse   = "Coarse"

	// coarse candidates span this fraction of each axis
	coarseLo = 0.1
	coarseHi = 0.9
)

// SanitizeAndBackfill turns a preset list of (x, y) coordinates into exactly k
// unique node ids.
//
//  1. Keep, in order, the coordinates that name a node of g (rounded
//     coordinates), dropping repeats.
//  2. If at least k survive, return the first k.
//  3. Otherwise, if none survived, start from a uniform random node.
//  4. Grow by farthest-point sampling: the next seed is the first node in id
//     order maximising the minimum squared Euclidean distance to the chosen set.
//
// rng is consumed only in step 3 and may be nil when a preset survives.
// k > N fails with *InfeasibilityError.
//
// Complexity: O(len(preset) + N·k²) worst case.
func SanitizeAndBackfill(g *core.Graph, preset [][2]int, k int, rng *rand.Rand) ([]uint32, error) {
	if g == nil || g.Order() == 0 {
		return nil, fmt.Errorf("%s: %w", methodSanitize, ErrEmptyGraph)
	}
	if k < 1 {
		return nil, fmt.Errorf("%s: k=%d must be ≥ 1: %w", methodSanitize, k, ErrBadParams)
	}
	n := g.Order()
	if k > n {
		return nil, &InfeasibilityError{Requested: k, Placed: n}
	}

	// coordinate → lowest id at that rounded position
	pos := roundedPositions(g)
	index := make(map[[2]int]uint32, n)
	for i := n - 1; i >= 0; i-- {
		index[pos[i]] = uint32(i)
	}

	chosen := make([]bool, n)
	clean := make([]uint32, 0, k)
	for _, xy := range preset {
		id, ok := index[xy]
		if !ok || chosen[id] {
			continue
		}
		chosen[id] = true
		clean = append(clean, id)
	}
	if len(clean) >= k {
		return clean[:k], nil
	}

	if len(clean) == 0 {
		if rng == nil {
			return nil, fmt.Errorf("%s: empty preset: %w", methodSanitize, ErrNeedRandSource)
		}
		first := uint32(rng.IntN(n))
		chosen[first] = true
		clean = append(clean, first)
	}

	// minD2[i] is the min squared distance from node i to the chosen set
	xs, ys := make([]float64, n), make([]float64, n)
	minD2 := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i], _ = g.Position(uint32(i))
		minD2[i] = math.Inf(1)
	}
	relax := func(s uint32) {
		for i := 0; i < n; i++ {
			dx, dy := xs[i]-xs[s], ys[i]-ys[s]
			minD2[i] = math.Min(minD2[i], dx*dx+dy*dy)
		}
	}
	for _, s := range clean {
		relax(s)
	}
	for len(clean) < k {
		best, bestD := -1, -1.0
		for i := 0; i < n; i++ {
			if !chosen[i] && minD2[i] > bestD {
				best, bestD = i, minD2[i]
			}
		}
		id := uint32(best)
		chosen[id] = true
		clean = append(clean, id)
		relax(id)
	}

	return clean, nil
}

// Coarse picks k seeds from an evenly spaced candidate lattice over the
// integer bounding box of g, then sanitizes and backfills them.
//
// With side = ⌈√k⌉, candidate axes are linspace(0.1, 0.9, min(side, W))·(W−1)
// and likewise for H, rounded half-to-even. Candidates are deduplicated and
// sorted by (x, y); the first k are kept. Candidates that fall on holes of a
// masked lattice are dropped by SanitizeAndBackfill and backfilled.
func Coarse(g *core.Graph, k int, rng *rand.Rand) ([]uint32, error) {
	if g == nil || g.Order() == 0 {
		return nil, fmt.Errorf("%s: %w", methodCoarse, ErrEmptyGraph)
	}
	if k < 1 {
		return nil, fmt.Errorf("%s: k=%d must be ≥ 1: %w", methodCoarse, k, ErrBadParams)
	}
	minX, maxX, minY, maxY, _ := g.Bounds()
	ox, oy := int(math.RoundToEven(minX)), int(math.RoundToEven(minY))
	w := int(math.RoundToEven(maxX)) - ox + 1
	h := int(math.RoundToEven(maxY)) - oy + 1

	side := int(math.Ceil(math.Sqrt(float64(k))))
	xs := linspace(coarseLo, coarseHi, min(side, w))
	ys := linspace(coarseLo, coarseHi, min(side, h))

	seen := make(map[[2]int]struct{}, len(xs)*len(ys))
	cands := make([][2]int, 0, len(xs)*len(ys))
	for _, fy := range ys {
		for _, fx := range xs {
			c := [2]int{
				clampInt(int(math.RoundToEven(fx*float64(w-1))), 0, w-1) + ox,
				clampInt(int(math.RoundToEven(fy*float64(h-1))), 0, h-1) + oy,
			}
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			cands = append(cands, c)
		}
	}
	slices.SortFunc(cands, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
	if len(cands) > k {
		cands = cands[:k]
	}

	return SanitizeAndBackfill(g, cands, k, rng)
}

// Coordinates returns the rounded (x, y) of every id, e.g. to persist a
// selection as a preset.
func Coordinates(g *core.Graph, ids []uint32) ([][2]int, error) {
	out := make([][2]int, len(ids))
	for i, id := range ids {
		x, y, err := g.Position(id)
		if err != nil {
			return nil, fmt.Errorf("Coordinates: %w", err)
		}
		out[i] = [2]int{int(math.RoundToEven(x)), int(math.RoundToEven(y))}
	}
	return out, nil
}

// linspace returns n evenly spaced values over [lo, hi]; n == 1 yields [lo].
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
