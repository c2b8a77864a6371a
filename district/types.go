package district

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSeeds indicates k < 1, an out-of-range seed or a repeated seed.
	ErrBadSeeds = errors.New("district: invalid seeds")
	// ErrDisconnected indicates a GEO layer with more than one component
	// when WithRequireConnected is set.
	ErrDisconnected = errors.New("district: geo layer is not connected")
	// ErrBadLabels indicates a label vector that is not a k-partition.
	ErrBadLabels = errors.New("district: invalid labels")
	// ErrNeedRandSource indicates Grow was called without an RNG.
	ErrNeedRandSource = errors.New("district: rng is required")
)

// FallbackKind classifies a degenerate growth step taken when every
// frontier is empty while nodes remain unassigned.
type FallbackKind int

const (
	// FallbackAdopt assigned the lowest-id unassigned node that touches a
	// district to the district of its first assigned neighbour.
	FallbackAdopt FallbackKind = iota + 1
	// FallbackNearestSeed assigned an isolated node to the seed closest in id.
	FallbackNearestSeed
)

// String implements fmt.Stringer.
func (k FallbackKind) String() string {
	switch k {
	case FallbackAdopt:
		return "adopt"
	case FallbackNearestSeed:
		return "nearest-seed"
	default:
		return fmt.Sprintf("FallbackKind(%d)", int(k))
	}
}

// FallbackEvent records one degenerate growth step. A district grown with
// FallbackNearestSeed events is not guaranteed to be contiguous.
type FallbackEvent struct {
	Kind FallbackKind
	// Node is the node that was assigned.
	Node uint32
	// District is the label it received.
	District int32
	// Via is the assigned neighbour adopted from (FallbackAdopt) or the seed
	// chosen (FallbackNearestSeed).
	Via uint32
	// Assigned is the number of nodes assigned before this step.
	Assigned int
}

// Result is the outcome of Grow.
type Result struct {
	// Labels maps node id to district in [0, k).
	Labels []int32
	// Seeds echoes the seed ids; Seeds[j] belongs to district j.
	Seeds []uint32
	// Fallbacks lists every degenerate step in order.
	Fallbacks []FallbackEvent
}

// Degenerate reports whether any fallback step was taken.
func (r *Result) Degenerate() bool { return len(r.Fallbacks) > 0 }

// Sizes returns the node count of every district.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.Seeds))
	for _, l := range r.Labels {
		if l >= 0 && int(l) < len(sizes) {
			sizes[l]++
		}
	}
	return sizes
}

// Option configures Grow.
type Option func(*options)

type options struct {
	requireConnected bool
}

// WithRequireConnected makes Grow reject a disconnected GEO layer with
// ErrDisconnected before any draw, instead of growing with fallbacks.
func WithRequireConnected() Option {
	return func(o *options) { o.requireConnected = true }
}
