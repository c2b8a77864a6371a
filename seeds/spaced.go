package seeds

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/frankengrid/core"
)

const (
	methodSpaced = "Spaced"

	// DefaultMaxTries bounds the number of candidate draws in Spaced.
	DefaultMaxTries = 10000
)

// Option configures Spaced.
type Option func(*options)

type options struct {
	maxTries int
}

// WithMaxTries overrides DefaultMaxTries. Panics if n < 1.
func WithMaxTries(n int) Option {
	if n < 1 {
		panic("seeds: WithMaxTries(n<1)")
	}
	return func(o *options) { o.maxTries = n }
}

// Spaced draws k node ids whose pairwise Manhattan distance, measured on
// rounded coordinates, is at least dMin.
//
// Each attempt draws a candidate rng.IntN(N) and accepts it iff it is at
// distance ≥ dMin from every accepted seed. After the try budget the call
// fails with *InfeasibilityError carrying the partial count. Since dMin ≥ 1,
// accepted ids are unique.
//
// Complexity: O(maxTries·k).
func Spaced(g *core.Graph, k, dMin int, rng *rand.Rand, opts ...Option) ([]uint32, error) {
	o := options{maxTries: DefaultMaxTries}
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil || g.Order() == 0 {
		return nil, fmt.Errorf("%s: %w", methodSpaced, ErrEmptyGraph)
	}
	if k < 1 || dMin < 1 {
		return nil, fmt.Errorf("%s: k=%d dMin=%d (each must be ≥ 1): %w", methodSpaced, k, dMin, ErrBadParams)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodSpaced, ErrNeedRandSource)
	}

	pos := roundedPositions(g)
	seeds := make([]uint32, 0, k)
	tries := 0
	for len(seeds) < k && tries < o.maxTries {
		cand := uint32(rng.IntN(len(pos)))
		ok := true
		for _, s := range seeds {
			if manhattan(pos[cand], pos[s]) < dMin {
				ok = false
				break
			}
		}
		if ok {
			seeds = append(seeds, cand)
		}
		tries++
	}
	if len(seeds) < k {
		return nil, &InfeasibilityError{Requested: k, Placed: len(seeds), Attempts: tries, MinDistance: dMin}
	}

	return seeds, nil
}

// roundedPositions returns every node coordinate rounded half-to-even.
func roundedPositions(g *core.Graph) [][2]int {
	out := make([][2]int, g.Order())
	for i := range out {
		x, y, _ := g.Position(uint32(i))
		out[i] = [2]int{int(math.RoundToEven(x)), int(math.RoundToEven(y))}
	}
	return out
}

func manhattan(a, b [2]int) int {
	return abs(a[0]-b[0]) + abs(a[1]-b[1])
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
