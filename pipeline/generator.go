package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/frankengrid/builder"
	"github.com/katalvlaran/frankengrid/core"
	"github.com/katalvlaran/frankengrid/district"
	"github.com/katalvlaran/frankengrid/gridgraph"
	"github.com/katalvlaran/frankengrid/opinion"
	"github.com/katalvlaran/frankengrid/seeds"
)

// Stage stream identifiers fed to core.DeriveSeed.
const (
	streamSocial uint64 = iota + 1
	streamOpinion
	streamSeeds
	streamDistrict
)

// Stage names used as the "stage" log field and metric label.
const (
	StageGraph     = "graph"
	StageSocial    = "social"
	StageOpinion   = "opinion"
	StageSeeds     = "seeds"
	StageDistricts = "districts"
)

// Generator runs the five stages of one configuration. A Generator is not
// safe for concurrent Generate calls.
type Generator struct {
	cfg     Config
	logger  *zap.Logger
	metrics *Metrics
	presets *seeds.Presets
}

// GeneratorOption customises a Generator.
type GeneratorOption func(*Generator)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) GeneratorOption {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(g *Generator) { g.logger = l }
}

// WithMetrics sets the metrics sink. Panics on nil.
func WithMetrics(m *Metrics) GeneratorOption {
	if m == nil {
		panic("pipeline: WithMetrics(nil)")
	}
	return func(g *Generator) { g.metrics = m }
}

// WithPresets supplies an in-memory presets document; it takes precedence
// over Seeds.PresetsFile.
func WithPresets(p *seeds.Presets) GeneratorOption {
	if p == nil {
		panic("pipeline: WithPresets(nil)")
	}
	return func(g *Generator) { g.presets = p }
}

// NewGenerator validates cfg and returns a Generator. Without options it logs
// nowhere and records metrics on a private registry.
func NewGenerator(cfg Config, opts ...GeneratorOption) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if g.metrics == nil {
		g.metrics = NewMetrics(prometheus.NewRegistry())
	}
	return g, nil
}

// stageSeed returns the override when set, else the derived stream seed.
func (gen *Generator) stageSeed(override *uint64, stream uint64) uint64 {
	if override != nil {
		return *override
	}
	return core.DeriveSeed(gen.cfg.Seed, stream)
}

// timed runs fn and records its duration under stage.
func (gen *Generator) timed(stage string, fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	d := time.Since(start)
	gen.metrics.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
	return d, err
}

// Generate runs graph, social, opinion, seeds and districts in that order.
// The result depends only on the configuration.
func (gen *Generator) Generate() (*Dataset, error) {
	ds := &Dataset{RunID: uuid.New(), Config: gen.cfg}
	log := gen.logger.With(zap.String("run_id", ds.RunID.String()))

	d, err := gen.timed(StageGraph, func() error { return gen.buildGeo(ds) })
	if err != nil {
		log.Error("stage failed", zap.String("stage", StageGraph), zap.Error(err))
		return nil, err
	}
	log.Info("stage done",
		zap.String("stage", StageGraph),
		zap.Int("nodes", ds.Graph.Order()),
		zap.Int("geo_edges", ds.Graph.GeoSize()),
		zap.Int("bridged_cells", ds.BridgedCells),
		zap.Duration("took", d))

	d, err = gen.timed(StageSocial, func() error { return gen.buildSocial(ds) })
	if err != nil {
		log.Error("stage failed", zap.String("stage", StageSocial), zap.Error(err))
		return nil, err
	}
	log.Info("stage done",
		zap.String("stage", StageSocial),
		zap.Int("social_edges", ds.Graph.SocialSize()),
		zap.Duration("took", d))

	d, err = gen.timed(StageOpinion, func() error { return gen.fillOpinions(ds) })
	if err != nil {
		log.Error("stage failed", zap.String("stage", StageOpinion), zap.Error(err))
		return nil, err
	}
	log.Info("stage done",
		zap.String("stage", StageOpinion),
		zap.String("mode", gen.cfg.Opinion.Mode),
		zap.Duration("took", d))

	d, err = gen.timed(StageSeeds, func() error { return gen.pickSeeds(ds, log) })
	if err != nil {
		log.Error("stage failed", zap.String("stage", StageSeeds), zap.Error(err))
		return nil, err
	}
	log.Info("stage done",
		zap.String("stage", StageSeeds),
		zap.String("strategy", ds.SeedStrategy),
		zap.Uint32s("seeds", ds.Seeds),
		zap.Duration("took", d))

	d, err = gen.timed(StageDistricts, func() error { return gen.growDistricts(ds) })
	if err != nil {
		log.Error("stage failed", zap.String("stage", StageDistricts), zap.Error(err))
		return nil, err
	}
	for _, ev := range ds.Districts.Fallbacks {
		gen.metrics.DegenerateGrowth.WithLabelValues(ev.Kind.String()).Inc()
		log.Warn("degenerate growth step",
			zap.Stringer("kind", ev.Kind),
			zap.Uint32("node", ev.Node),
			zap.Int32("district", ev.District),
			zap.Uint32("via", ev.Via),
			zap.Int("assigned", ev.Assigned))
	}
	if !ds.Contiguous {
		gen.metrics.NonContiguousRuns.Inc()
	}
	log.Info("stage done",
		zap.String("stage", StageDistricts),
		zap.Ints("sizes", ds.Districts.Sizes()),
		zap.Bool("contiguous", ds.Contiguous),
		zap.Int("fallbacks", len(ds.Districts.Fallbacks)),
		zap.Duration("took", d))

	gen.metrics.GraphsBuilt.Inc()
	gen.metrics.NodesGenerated.Add(float64(ds.Graph.Order()))
	gen.metrics.GeoEdgesBuilt.Add(float64(ds.Graph.GeoSize()))
	gen.metrics.SocialEdgesBuilt.Add(float64(ds.Graph.SocialSize()))
	return ds, nil
}

func (gen *Generator) buildGeo(ds *Dataset) error {
	gc := gen.cfg.Grid
	mode, err := core.ParseNeighborhood(gc.Neighborhood)
	if err != nil {
		return fmt.Errorf("%s: %w", StageGraph, err)
	}
	bopts := []builder.BuilderOption{
		builder.WithGeoWeight(gc.GeoWeight),
		builder.WithBarrierFlag(gc.Barrier),
	}

	var g *core.Graph
	if gc.Mask == nil {
		g, err = builder.BuildGraph(bopts, builder.GridNodes(gc.H, gc.W), builder.GeoGrid(gc.H, gc.W, mode))
	} else {
		var gg *gridgraph.GridGraph
		if gg, err = gridgraph.From2D(gc.Mask, gridgraph.ConnFor(mode)); err != nil {
			return fmt.Errorf("%s: %w", StageGraph, err)
		}
		if gc.BridgeMask {
			if gg, ds.BridgedCells, err = gg.Bridged(); err != nil {
				return fmt.Errorf("%s: %w", StageGraph, err)
			}
			gen.metrics.MaskCellsBridged.Add(float64(ds.BridgedCells))
		}
		g, err = builder.BuildGraph(bopts, builder.MaskNodes(gg), builder.GeoInferred(mode))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", StageGraph, err)
	}
	if gen.cfg.Seeds.K > g.Order() {
		return fmt.Errorf("%s: k=%d exceeds %d nodes: %w", StageGraph, gen.cfg.Seeds.K, g.Order(), ErrInvalidConfig)
	}
	ds.Graph = g
	return nil
}

func (gen *Generator) buildSocial(ds *Dataset) error {
	sc := gen.cfg.Social
	bopts := []builder.BuilderOption{
		builder.WithSeed(gen.stageSeed(sc.Seed, streamSocial)),
		builder.WithSocialWeight(sc.Weight),
	}
	if err := builder.Apply(ds.Graph, bopts, builder.SocialBA(sc.M)); err != nil {
		return fmt.Errorf("%s: %w", StageSocial, err)
	}
	return nil
}

func (gen *Generator) fillOpinions(ds *Dataset) error {
	oc := gen.cfg.Opinion
	mode, err := opinion.ParseMode(oc.Mode)
	if err != nil {
		return fmt.Errorf("%s: %w", StageOpinion, err)
	}
	cfg := opinion.Config{
		Mode: mode,
		Params: opinion.Params{
			Alpha:     oc.Alpha,
			Beta:      oc.Beta,
			Influence: oc.Influence,
			Domain:    oc.Domain,
		},
		Constant:   oc.Constant,
		BlobsK:     oc.BlobsK,
		BlobsSigma: oc.BlobsSigma,
	}
	rng := core.NewRand(gen.stageSeed(oc.Seed, streamOpinion))
	if ds.Opinions, err = opinion.Fill(ds.Graph, cfg, rng); err != nil {
		return fmt.Errorf("%s: %w", StageOpinion, err)
	}
	if ds.OpinionsScaled, err = opinion.Rescale(ds.Opinions, oc.Domain, oc.Scale); err != nil {
		return fmt.Errorf("%s: %w", StageOpinion, err)
	}
	return nil
}

func (gen *Generator) pickSeeds(ds *Dataset, log *zap.Logger) error {
	sc := gen.cfg.Seeds
	rng := core.NewRand(gen.stageSeed(sc.Seed, streamSeeds))
	ds.SeedStrategy = sc.Strategy

	var err error
	switch sc.Strategy {
	case StrategySpaced:
		ds.Seeds, err = seeds.Spaced(ds.Graph, sc.K, sc.MinDistance, rng, seeds.WithMaxTries(sc.MaxTries))
		var inf *seeds.InfeasibilityError
		if errors.As(err, &inf) {
			gen.metrics.SeedInfeasible.WithLabelValues(StrategySpaced).Inc()
			if sc.CoarseFallback {
				log.Warn("spaced seeds infeasible, using coarse grid",
					zap.Int("placed", inf.Placed),
					zap.Int("requested", inf.Requested),
					zap.Int("attempts", inf.Attempts))
				ds.SeedStrategy = StrategyCoarse
				ds.Seeds, err = seeds.Coarse(ds.Graph, sc.K, rng)
			}
		}
	case StrategyCoarse:
		ds.Seeds, err = seeds.Coarse(ds.Graph, sc.K, rng)
	case StrategyPreset:
		p := gen.presets
		if p == nil {
			if p, err = seeds.LoadPresets(sc.PresetsFile); err != nil {
				break
			}
		}
		var coords [][2]int
		if coords, err = p.Lookup(sc.PresetKey); err != nil {
			break
		}
		ds.Seeds, err = seeds.SanitizeAndBackfill(ds.Graph, coords, sc.K, rng)
	default:
		err = fmt.Errorf("strategy %q: %w", sc.Strategy, ErrInvalidConfig)
	}
	if err != nil {
		var inf *seeds.InfeasibilityError
		if errors.As(err, &inf) && ds.SeedStrategy != StrategySpaced {
			gen.metrics.SeedInfeasible.WithLabelValues(ds.SeedStrategy).Inc()
		}
		return fmt.Errorf("%s: %w", StageSeeds, err)
	}
	return nil
}

func (gen *Generator) growDistricts(ds *Dataset) error {
	dc := gen.cfg.Districts
	rng := core.NewRand(gen.stageSeed(dc.Seed, streamDistrict))
	var opts []district.Option
	if dc.RequireConnected {
		opts = append(opts, district.WithRequireConnected())
	}

	res, err := district.Grow(ds.Graph, ds.Seeds, rng, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", StageDistricts, err)
	}
	ds.Districts = res
	if ds.Contiguous, err = district.Contiguous(ds.Graph, res.Labels, len(ds.Seeds)); err != nil {
		return fmt.Errorf("%s: %w", StageDistricts, err)
	}

	ds.Nodes = ds.Graph.Nodes()
	if err = opinion.Attach(ds.Nodes, ds.Opinions); err != nil {
		return fmt.Errorf("%s: %w", StageDistricts, err)
	}
	if err = district.Attach(ds.Nodes, res); err != nil {
		return fmt.Errorf("%s: %w", StageDistricts, err)
	}
	return nil
}
