package opinion

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/frankengrid/core"
)

const (
	methodFill    = "Fill"
	methodRescale = "Rescale"
	methodAttach  = "Attach"

	// blobs normalisation floor and logistic steepness
	blobsMinSpan   = 1e-8
	blobsSteepness = 4.0
)

// Fill dispatches on cfg.Mode and returns one opinion per node of g.
//
//   - hbo:      FillHBO(g, cfg.Params, rng).
//   - iid-beta: N independent Beta(α, β) draws in id order.
//   - constant: cfg.Constant for every node; rng is not used and may be nil.
//   - blobs:    cfg.BlobsK centers (IntN over the integer bounding box, x then y),
//     Gaussian sum with width cfg.BlobsSigma, min-max normalised, then
//     1/(1+exp(−4(f−0.5))).
//
// Every value is clipped to cfg.Params.Domain.
func Fill(g *core.Graph, cfg Config, rng *rand.Rand) ([]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", methodFill, ErrBadParams)
	}
	switch cfg.Mode {
	case ModeHBO:
		return FillHBO(g, cfg.Params, rng)
	case ModeConstant:
		if !cfg.Params.Domain.Valid() {
			return nil, fmt.Errorf("%s: empty domain: %w", methodFill, ErrBadParams)
		}
		out := make([]float64, g.Order())
		c := cfg.Params.Domain.Clip(cfg.Constant)
		for i := range out {
			out[i] = c
		}
		return out, nil
	case ModeIIDBeta:
		if err := cfg.Params.validate(methodFill); err != nil {
			return nil, err
		}
		if rng == nil {
			return nil, fmt.Errorf("%s: %w", methodFill, ErrNeedRandSource)
		}
		prior := distuv.Beta{Alpha: cfg.Params.Alpha, Beta: cfg.Params.Beta, Src: rng}
		out := make([]float64, g.Order())
		for i := range out {
			out[i] = cfg.Params.Domain.Clip(prior.Rand())
		}
		return out, nil
	case ModeBlobs:
		return fillBlobs(g, cfg, rng)
	}
	return nil, fmt.Errorf("%s: mode %q: %w", methodFill, cfg.Mode, ErrUnknownMode)
}

func fillBlobs(g *core.Graph, cfg Config, rng *rand.Rand) ([]float64, error) {
	if cfg.BlobsK < 1 || !(cfg.BlobsSigma > 0) {
		return nil, fmt.Errorf("%s: blobs k=%d sigma=%g: %w", methodFill, cfg.BlobsK, cfg.BlobsSigma, ErrBadParams)
	}
	if !cfg.Params.Domain.Valid() {
		return nil, fmt.Errorf("%s: empty domain: %w", methodFill, ErrBadParams)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodFill, ErrNeedRandSource)
	}
	n := g.Order()
	minX, maxX, minY, maxY, ok := g.Bounds()
	if !ok {
		return []float64{}, nil
	}
	spanX := int(math.Floor(maxX-minX)) + 1
	spanY := int(math.Floor(maxY-minY)) + 1

	centers := make([][2]float64, cfg.BlobsK)
	for k := range centers {
		centers[k][0] = minX + float64(rng.IntN(spanX))
		centers[k][1] = minY + float64(rng.IntN(spanY))
	}

	s2 := 2 * cfg.BlobsSigma * cfg.BlobsSigma
	field := make([]float64, n)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		x, y, _ := g.Position(uint32(i))
		f := 0.0
		for _, c := range centers {
			dx, dy := x-c[0], y-c[1]
			f += math.Exp(-(dx*dx + dy*dy) / s2)
		}
		field[i] = f
		lo, hi = math.Min(lo, f), math.Max(hi, f)
	}
	span := math.Max(blobsMinSpan, hi-lo)
	for i, f := range field {
		norm := (f - lo) / span
		field[i] = cfg.Params.Domain.Clip(1 / (1 + math.Exp(-blobsSteepness*(norm-0.5))))
	}
	return field, nil
}

// Rescale maps every value linearly from one domain to another and clips the
// result to the target domain. With from=[0,1], to=[0,7] this is clip(7v, 0, 7).
func Rescale(vals []float64, from, to Domain) ([]float64, error) {
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%s: from=%v to=%v: %w", methodRescale, from, to, ErrBadParams)
	}
	scale := (to.Max - to.Min) / (from.Max - from.Min)
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = to.Clip(to.Min + (v-from.Min)*scale)
	}
	return out, nil
}

// Attach writes vals into the Opinion field of nodes (index = node id).
func Attach(nodes []core.Node, vals []float64) error {
	if len(nodes) != len(vals) {
		return fmt.Errorf("%s: %d nodes, %d opinions: %w", methodAttach, len(nodes), len(vals), core.ErrSizeMismatch)
	}
	for i := range nodes {
		nodes[i].Opinion = vals[i]
	}
	return nil
}
