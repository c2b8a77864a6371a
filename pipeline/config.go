package pipeline

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/frankengrid/opinion"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// Seed strategies.
const (
	StrategySpaced = "spaced"
	StrategyCoarse = "coarse"
	StrategyPreset = "preset"
)

// Config is the YAML document driving one generation run.
type Config struct {
	// Seed is the pipeline seed every stage stream is derived from.
	Seed      uint64         `yaml:"seed"`
	Grid      GridConfig     `yaml:"grid"`
	Social    SocialConfig   `yaml:"social"`
	Opinion   OpinionConfig  `yaml:"opinion"`
	Seeds     SeedsConfig    `yaml:"seeds"`
	Districts DistrictConfig `yaml:"districts"`
	Log       LogConfig      `yaml:"log"`
}

// GridConfig describes the node set and GEO layer. When Mask is set its land
// cells (value ≥ 1) are the nodes and H/W are taken from the mask.
type GridConfig struct {
	H            int     `yaml:"h" validate:"min=1"`
	W            int     `yaml:"w" validate:"min=1"`
	Neighborhood string  `yaml:"neighborhood" validate:"oneof=rook queen"`
	Mask         [][]int `yaml:"mask,omitempty"`
	// BridgeMask converts the fewest water cells needed to join every island.
	BridgeMask bool    `yaml:"bridge_mask"`
	GeoWeight  float64 `yaml:"geo_weight" validate:"gte=0"`
	Barrier    bool    `yaml:"barrier"`
}

// SocialConfig describes the SOCIAL layer.
type SocialConfig struct {
	M      int     `yaml:"m" validate:"min=1"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
	// Seed overrides the derived stage seed.
	Seed *uint64 `yaml:"seed,omitempty"`
}

// OpinionConfig describes the opinion field.
type OpinionConfig struct {
	Mode       string         `yaml:"mode" validate:"oneof=hbo iid-beta constant blobs"`
	Alpha      float64        `yaml:"alpha" validate:"gt=0"`
	Beta       float64        `yaml:"beta" validate:"gt=0"`
	Influence  float64        `yaml:"influence" validate:"gte=0,lte=1"`
	Domain     opinion.Domain `yaml:"domain"`
	Scale      opinion.Domain `yaml:"scale"`
	Constant   float64        `yaml:"constant"`
	BlobsK     int            `yaml:"blobs_k" validate:"min=1"`
	BlobsSigma float64        `yaml:"blobs_sigma" validate:"gt=0"`
	Seed       *uint64        `yaml:"seed,omitempty"`
}

// SeedsConfig describes seed selection.
type SeedsConfig struct {
	K           int    `yaml:"k" validate:"min=1"`
	Strategy    string `yaml:"strategy" validate:"oneof=spaced coarse preset"`
	MinDistance int    `yaml:"min_distance" validate:"min=1"`
	MaxTries    int    `yaml:"max_tries" validate:"min=1"`
	PresetsFile string `yaml:"presets_file,omitempty" validate:"required_if=Strategy preset"`
	PresetKey   string `yaml:"preset_key,omitempty" validate:"required_if=Strategy preset"`
	// CoarseFallback switches to Coarse when Spaced is infeasible.
	CoarseFallback bool    `yaml:"coarse_fallback"`
	Seed           *uint64 `yaml:"seed,omitempty"`
}

// DistrictConfig describes district growth.
type DistrictConfig struct {
	RequireConnected bool    `yaml:"require_connected"`
	Seed             *uint64 `yaml:"seed,omitempty"`
}

// LogConfig selects the zap preset and level.
type LogConfig struct {
	Development bool   `yaml:"development"`
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
}

// DefaultConfig mirrors the reference initiator: an 8×9 rook grid, BA m=2,
// HBO α=β=2 ρ=0.8 scaled to [0,7], six districts spaced by Manhattan ≥ 3.
func DefaultConfig() Config {
	return Config{
		Seed: 42,
		Grid: GridConfig{
			H:            8,
			W:            9,
			Neighborhood: "rook",
			GeoWeight:    1,
		},
		Social: SocialConfig{M: 2, Weight: 1},
		Opinion: OpinionConfig{
			Mode:       string(opinion.ModeHBO),
			Alpha:      2,
			Beta:       2,
			Influence:  0.8,
			Domain:     opinion.UnitDomain,
			Scale:      opinion.Domain{Min: 0, Max: 7},
			Constant:   0.5,
			BlobsK:     5,
			BlobsSigma: 2,
		},
		Seeds: SeedsConfig{
			K:           6,
			Strategy:    StrategySpaced,
			MinDistance: 3,
			MaxTries:    10000,
		},
		Log: LogConfig{Level: "info"},
	}
}

var validate = validator.New()

// Validate checks struct tags and the cross-field rules tags cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	for _, w := range []struct {
		name string
		v    float64
	}{
		{"grid.geo_weight", c.Grid.GeoWeight},
		{"social.weight", c.Social.Weight},
	} {
		if math.IsNaN(w.v) || math.IsInf(w.v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, w.name)
		}
	}
	if !c.Opinion.Domain.Valid() {
		return fmt.Errorf("%w: opinion.domain [%g,%g] is empty", ErrInvalidConfig, c.Opinion.Domain.Min, c.Opinion.Domain.Max)
	}
	if !c.Opinion.Scale.Valid() {
		return fmt.Errorf("%w: opinion.scale [%g,%g] is empty", ErrInvalidConfig, c.Opinion.Scale.Min, c.Opinion.Scale.Max)
	}
	if c.Grid.Mask != nil {
		if len(c.Grid.Mask) == 0 || len(c.Grid.Mask[0]) == 0 {
			return fmt.Errorf("%w: grid.mask is empty", ErrInvalidConfig)
		}
		for i, row := range c.Grid.Mask {
			if len(row) != len(c.Grid.Mask[0]) {
				return fmt.Errorf("%w: grid.mask row %d has %d cells, want %d", ErrInvalidConfig, i, len(row), len(c.Grid.Mask[0]))
			}
		}
	} else if c.Seeds.K > c.Grid.H*c.Grid.W {
		return fmt.Errorf("%w: seeds.k=%d exceeds %d nodes", ErrInvalidConfig, c.Seeds.K, c.Grid.H*c.Grid.W)
	}
	return nil
}

// formatValidationError reports the first failing field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	e := verrs[0]
	switch e.Tag() {
	case "min":
		return fmt.Errorf("%w: %s must be at least %s", ErrInvalidConfig, e.Namespace(), e.Param())
	case "oneof":
		return fmt.Errorf("%w: %s must be one of [%s]", ErrInvalidConfig, e.Namespace(), e.Param())
	case "required_if":
		return fmt.Errorf("%w: %s is required when %s", ErrInvalidConfig, e.Namespace(), e.Param())
	default:
		return fmt.Errorf("%w: %s failed %s=%s", ErrInvalidConfig, e.Namespace(), e.Tag(), e.Param())
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML file; an empty path yields the validated defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	return ParseConfig(data)
}
