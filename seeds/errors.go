package seeds

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasible is matched by every *InfeasibilityError.
	ErrInfeasible = errors.New("seeds: requested seed count is infeasible")
	// ErrBadParams indicates k < 1, d_min < 1 or a non-positive try budget.
	ErrBadParams = errors.New("seeds: invalid parameters")
	// ErrNeedRandSource indicates a stochastic selector was called without an RNG.
	ErrNeedRandSource = errors.New("seeds: rng is required")
	// ErrEmptyGraph indicates a graph with no nodes.
	ErrEmptyGraph = errors.New("seeds: graph has no nodes")
	// ErrPresetNotFound indicates a missing "<grid>:<run>" preset.
	ErrPresetNotFound = errors.New("seeds: preset not found")
	// ErrBadPresetKey indicates a preset key without the "<grid>:<run>" form.
	ErrBadPresetKey = errors.New("seeds: preset key must be <grid>:<run>")
)

// InfeasibilityError reports how far a selector got before giving up.
type InfeasibilityError struct {
	// Requested is k.
	Requested int
	// Placed is the number of seeds accepted before the budget ran out.
	Placed int
	// Attempts is the number of candidates drawn.
	Attempts int
	// MinDistance is the spacing constraint, 0 when not applicable.
	MinDistance int
}

// Error implements error.
func (e *InfeasibilityError) Error() string {
	if e.MinDistance > 0 {
		return fmt.Sprintf("seeds: could not place %d seeds with Manhattan >= %d: placed %d after %d attempts",
			e.Requested, e.MinDistance, e.Placed, e.Attempts)
	}
	return fmt.Sprintf("seeds: could not place %d seeds: placed %d", e.Requested, e.Placed)
}

// Unwrap lets errors.Is(err, ErrInfeasible) match.
func (e *InfeasibilityError) Unwrap() error { return ErrInfeasible }
