package opinion

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/frankengrid/core"
)

const (
	methodFillHBO = "FillHBO"
	tiltBase      = 2.0
	tiltPivot     = 0.5
)

// FillHBO returns one opinion per node of g, produced by the HBO fill.
//
// Algorithm (one stream, consumed in this order per step):
//  1. r := rng.IntN(front); i := unfilled[r]; swap unfilled[r] with
//     unfilled[front-1]; front--.
//  2. Collect the opinions of already-filled GEO neighbours of i
//     (adjacency order).
//  3. None: v ~ Beta(α, β).
//  4. Otherwise v̄ = mean; v̄ > 0.5 ⇒ X ~ Beta(2(1+ρ), 2(1−ρ)), else
//     X ~ Beta(2(1−ρ), 2(1+ρ)); v = (1−ρ)X + ρv̄. With ρ = 1 the tilted Beta
//     degenerates to a point mass at 1 (or 0) and no draw is consumed.
//  5. Clip v to p.Domain and mark i filled.
//
// Complexity: O(N + E) plus N Beta draws. Memory: O(N).
func FillHBO(g *core.Graph, p Params, rng *rand.Rand) ([]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", methodFillHBO, ErrBadParams)
	}
	out := make([]float64, g.Order())
	if err := FillHBOInto(out, g, p, rng); err != nil {
		return nil, err
	}
	return out, nil
}

// FillHBOInto is FillHBO writing into dst, which must have length g.Order().
func FillHBOInto(dst []float64, g *core.Graph, p Params, rng *rand.Rand) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", methodFillHBO, ErrBadParams)
	}
	if !g.HasGeoLayer() {
		return fmt.Errorf("%s: %w", methodFillHBO, core.ErrNoGeoLayer)
	}
	if err := p.validate(methodFillHBO); err != nil {
		return err
	}
	if rng == nil {
		return fmt.Errorf("%s: %w", methodFillHBO, ErrNeedRandSource)
	}
	n := g.Order()
	if len(dst) != n {
		return fmt.Errorf("%s: len(dst)=%d, N=%d: %w", methodFillHBO, len(dst), n, core.ErrSizeMismatch)
	}

	prior := distuv.Beta{Alpha: p.Alpha, Beta: p.Beta, Src: rng}
	rho := p.Influence

	unfilled := make([]uint32, n)
	for i := range unfilled {
		unfilled[i] = uint32(i)
	}
	filled := make([]bool, n)

	for front := n; front > 0; front-- {
		r := rng.IntN(front)
		i := unfilled[r]
		unfilled[r], unfilled[front-1] = unfilled[front-1], unfilled[r]

		sum, cnt := 0.0, 0
		for _, nb := range g.GeoNeighbors(i) {
			if filled[nb] {
				sum += dst[nb]
				cnt++
			}
		}

		var v float64
		if cnt == 0 {
			v = prior.Rand()
		} else {
			mean := sum / float64(cnt)
			v = (1-rho)*tiltedDraw(mean, rho, rng) + rho*mean
		}
		dst[i] = p.Domain.Clip(v)
		filled[i] = true
	}

	return nil
}

// tiltedDraw samples the Beta tilted toward the side of mean.
func tiltedDraw(mean, rho float64, rng *rand.Rand) float64 {
	a, b := tiltBase*(1-rho), tiltBase*(1+rho)
	if mean > tiltPivot {
		a, b = b, a
	}
	// rho == 1: Beta(4, 0) / Beta(0, 4) is a point mass.
	switch {
	case b == 0:
		return 1
	case a == 0:
		return 0
	}
	return distuv.Beta{Alpha: a, Beta: b, Src: rng}.Rand()
}
