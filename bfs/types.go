package bfs

import "errors"

// ErrGraphNil is returned for a nil graph.
var ErrGraphNil = errors.New("bfs: nil graph")

// Unreached marks Depth entries of nodes the search did not reach.
const Unreached = -1

// Option tunes a BFS call.
type Option func(*options)

type options struct {
	keepEdge func(from, to uint32) bool
}

// WithFilterNeighbor skips the GEO step from→to whenever fn returns false.
func WithFilterNeighbor(fn func(from, to uint32) bool) Option {
	return func(o *options) { o.keepEdge = fn }
}

// BFSResult is indexed by node id. Order lists nodes in visit sequence and
// Depth is the GEO hop count from Start (Unreached if never reached).
type BFSResult struct {
	Start uint32
	Order []uint32
	Depth []int
}
