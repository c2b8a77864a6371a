// Command frankengrid generates one layered spatial graph dataset from a YAML
// configuration and logs a summary.
//
//	frankengrid -config run.yaml [-seed 7] [-seeds-out presets.yaml -seeds-key 8x9_K6:runA] [-metrics-addr :9090]
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/frankengrid/pipeline"
	"github.com/katalvlaran/frankengrid/seeds"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults when empty)")
	seed := flag.Uint64("seed", 0, "Override the pipeline seed (0 keeps the config value)")
	seedsOut := flag.String("seeds-out", "", "Write the chosen seeds to this presets file")
	seedsKey := flag.String("seeds-key", "", "Presets key <grid>:<run> for -seeds-out")
	metricsAddr := flag.String("metrics-addr", "", "Serve /metrics on this address after generating")
	flag.Parse()

	if err := run(*configPath, *seed, *seedsOut, *seedsKey, *metricsAddr); err != nil {
		fmt.Fprintln(os.Stderr, "frankengrid:", err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, seedsOut, seedsKey, metricsAddr string) error {
	cfg, err := pipeline.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	logger, err := pipeline.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	gen, err := pipeline.NewGenerator(cfg,
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(pipeline.NewMetrics(reg)))
	if err != nil {
		return err
	}

	ds, err := gen.Generate()
	if err != nil {
		return err
	}
	logger.Info("dataset generated",
		zap.String("run_id", ds.RunID.String()),
		zap.Int("nodes", ds.Graph.Order()),
		zap.Int("geo_edges", ds.Graph.GeoSize()),
		zap.Int("social_edges", ds.Graph.SocialSize()),
		zap.Ints("district_sizes", ds.Districts.Sizes()),
		zap.Bool("contiguous", ds.Contiguous))

	if seedsOut != "" {
		if err := writeSeeds(ds, seedsOut, seedsKey); err != nil {
			return err
		}
		logger.Info("seeds written", zap.String("path", seedsOut), zap.String("key", seedsKey))
	}

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		logger.Info("serving metrics", zap.String("addr", metricsAddr))
		return http.ListenAndServe(metricsAddr, mux)
	}
	return nil
}

// writeSeeds merges the dataset seeds into the presets file at path.
func writeSeeds(ds *pipeline.Dataset, path, key string) error {
	if key == "" {
		return errors.New("-seeds-out requires -seeds-key")
	}
	p, err := seeds.LoadPresets(path)
	if errors.Is(err, os.ErrNotExist) {
		p, err = seeds.ParsePresets(nil)
	}
	if err != nil {
		return err
	}
	coords, err := seeds.Coordinates(ds.Graph, ds.Seeds)
	if err != nil {
		return err
	}
	if err = p.Set(key, coords); err != nil {
		return err
	}
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
