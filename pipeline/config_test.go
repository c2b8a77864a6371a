package pipeline_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frankengrid/opinion"
	"github.com/katalvlaran/frankengrid/pipeline"
)

func TestDefaultConfig(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 8, cfg.Grid.H)
	assert.Equal(t, 9, cfg.Grid.W)
	assert.Equal(t, "rook", cfg.Grid.Neighborhood)
	assert.Equal(t, 2, cfg.Social.M)
	assert.Equal(t, 6, cfg.Seeds.K)
	assert.Equal(t, 3, cfg.Seeds.MinDistance)
	assert.Equal(t, opinion.Domain{Min: 0, Max: 7}, cfg.Opinion.Scale)
	assert.InDelta(t, 0.8, cfg.Opinion.Influence, 1e-12)
}

func TestParseConfig_OverridesDefaults(t *testing.T) {
	doc := `
seed: 7
grid:
  h: 6
  w: 6
  neighborhood: queen
social:
  m: 3
opinion:
  mode: blobs
  scale: {min: -1, max: 1}
seeds:
  k: 3
  strategy: coarse
log:
  level: debug
`
	cfg, err := pipeline.ParseConfig([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "queen", cfg.Grid.Neighborhood)
	assert.Equal(t, 3, cfg.Social.M)
	assert.Equal(t, "blobs", cfg.Opinion.Mode)
	assert.Equal(t, opinion.Domain{Min: -1, Max: 1}, cfg.Opinion.Scale)
	assert.Equal(t, "coarse", cfg.Seeds.Strategy)
	// untouched keys keep their defaults
	assert.InDelta(t, 2.0, cfg.Opinion.Alpha, 1e-12)
	assert.Equal(t, 3, cfg.Seeds.MinDistance)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseConfig_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		msg  string
	}{
		{"zero height", "grid: {h: 0}", "H must be at least 1"},
		{"bad neighborhood", "grid: {neighborhood: hex}", "must be one of"},
		{"zero m", "social: {m: 0}", "M must be at least 1"},
		{"alpha", "opinion: {alpha: 0}", "Alpha"},
		{"influence", "opinion: {influence: 1.5}", "Influence"},
		{"mode", "opinion: {mode: gauss}", "must be one of"},
		{"preset without key", "seeds: {strategy: preset, presets_file: p.yaml}", "PresetKey is required"},
		{"k exceeds grid", "grid: {h: 2, w: 2}\nseeds: {k: 5}", "exceeds"},
		{"empty domain", "opinion: {domain: {min: 1, max: 1}}", "opinion.domain"},
		{"ragged mask", "grid: {mask: [[1, 1], [1]]}", "row 1"},
		{"nan weight", "social: {weight: .nan}", "Weight"},
		{"inf weight", "grid: {geo_weight: .inf}", "grid.geo_weight must be finite"},
		{"inf weights", "{grid: {geo_weight: .inf}, social: {weight: .inf}}", "grid.geo_weight must be finite"},
		{"inf social weight", "social: {weight: .inf}", "social.weight must be finite"},
		{"level", "log: {level: loud}", "must be one of"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipeline.ParseConfig([]byte(tc.doc))
			if !errors.Is(err, pipeline.ErrInvalidConfig) {
				t.Fatalf("ParseConfig: want ErrInvalidConfig, got %v", err)
			}
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParseConfig_Malformed(t *testing.T) {
	_, err := pipeline.ParseConfig([]byte("grid: [unclosed"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, pipeline.ErrInvalidConfig))
}

func TestLoadConfig(t *testing.T) {
	cfg, err := pipeline.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, pipeline.DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\nseeds: {k: 2}\n"), 0o600))
	cfg, err = pipeline.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, 2, cfg.Seeds.K)

	_, err = pipeline.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "LoadConfig"))
}

func TestNewLogger(t *testing.T) {
	l, err := pipeline.NewLogger(pipeline.LogConfig{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1)) // debug
	assert.True(t, l.Core().Enabled(1))   // warn

	l, err = pipeline.NewLogger(pipeline.LogConfig{Development: true, Level: "debug"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))

	_, err = pipeline.NewLogger(pipeline.LogConfig{Level: "loud"})
	require.Error(t, err)
}
