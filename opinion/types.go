package opinion

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrBadParams indicates invalid shape, influence, domain or mode knobs.
	ErrBadParams = errors.New("opinion: invalid parameters")
	// ErrNeedRandSource indicates a stochastic mode was called without an RNG.
	ErrNeedRandSource = errors.New("opinion: rng is required")
	// ErrUnknownMode indicates an unrecognised mode name.
	ErrUnknownMode = errors.New("opinion: unknown mode")
)

// Domain is a closed interval [Min, Max] of opinion values.
type Domain struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// UnitDomain is the default opinion domain [0, 1].
var UnitDomain = Domain{Min: 0, Max: 1}

// Valid reports whether the domain is finite and non-empty (Min < Max).
func (d Domain) Valid() bool {
	return !math.IsNaN(d.Min) && !math.IsNaN(d.Max) &&
		!math.IsInf(d.Min, 0) && !math.IsInf(d.Max, 0) && d.Min < d.Max
}

// Clip clamps v into the domain.
func (d Domain) Clip(v float64) float64 {
	return math.Min(d.Max, math.Max(d.Min, v))
}

// Contains reports whether v lies in the domain.
func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// Params are the HBO parameters.
type Params struct {
	// Alpha, Beta are the shape parameters of the isolated-node prior.
	Alpha float64
	Beta  float64
	// Influence ρ ∈ [0,1] blends a draw toward the neighbour mean.
	Influence float64
	// Domain bounds every emitted value.
	Domain Domain
}

// DefaultParams returns α=β=2, ρ=0.8 over UnitDomain.
func DefaultParams() Params {
	return Params{Alpha: 2, Beta: 2, Influence: 0.8, Domain: UnitDomain}
}

func (p Params) validate(method string) error {
	switch {
	case !(p.Alpha > 0) || math.IsInf(p.Alpha, 0):
		return fmt.Errorf("%s: alpha=%g must be > 0: %w", method, p.Alpha, ErrBadParams)
	case !(p.Beta > 0) || math.IsInf(p.Beta, 0):
		return fmt.Errorf("%s: beta=%g must be > 0: %w", method, p.Beta, ErrBadParams)
	case !(p.Influence >= 0 && p.Influence <= 1):
		return fmt.Errorf("%s: influence=%g not in [0,1]: %w", method, p.Influence, ErrBadParams)
	case !p.Domain.Valid():
		return fmt.Errorf("%s: domain [%g,%g] is empty: %w", method, p.Domain.Min, p.Domain.Max, ErrBadParams)
	}
	return nil
}

// Mode selects the opinion generator.
type Mode string

const (
	// ModeHBO is the spatially correlated hierarchical Beta fill.
	ModeHBO Mode = "hbo"
	// ModeIIDBeta draws every node independently from Beta(α, β).
	ModeIIDBeta Mode = "iid-beta"
	// ModeConstant assigns Config.Constant to every node.
	ModeConstant Mode = "constant"
	// ModeBlobs sums Gaussian bumps around random centers and squashes the
	// normalised field with a logistic curve.
	ModeBlobs Mode = "blobs"
)

// ParseMode maps a case-insensitive name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeHBO, ModeIIDBeta, ModeConstant, ModeBlobs:
		return m, nil
	}
	return "", fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
}

// Config drives Fill.
type Config struct {
	Mode   Mode
	Params Params
	// Constant is the value of ModeConstant (clipped to the domain).
	Constant float64
	// BlobsK is the number of Gaussian centers of ModeBlobs (≥ 1).
	BlobsK int
	// BlobsSigma is the Gaussian width of ModeBlobs (> 0).
	BlobsSigma float64
}

// DefaultConfig returns mode hbo with DefaultParams, Constant 0.5, 5 blobs of width 2.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeHBO,
		Params:     DefaultParams(),
		Constant:   0.5,
		BlobsK:     5,
		BlobsSigma: 2,
	}
}
