// Package core defines the layered Graph (GEO + SOCIAL), its Node and Edge
// records, and the sentinel errors shared by every synthesis stage.
//
// Nodes are identified by dense uint32 ids in [0, N), assigned in insertion
// order. Each node carries a planar (x, y) coordinate. The GEO layer stores one
// canonical record per unordered pair (U < V); the SOCIAL layer stores one
// record per generated pair in the orientation produced by the generator.
//
// Errors:
//
//	ErrNodeOutOfRange        - id is not in [0, N).
//	ErrSizeMismatch          - caller supplied inconsistent sizes.
//	ErrNoGeoLayer            - GEO adjacency has not been built yet.
//	ErrNonIntegerCoordinate  - coordinate is not integer-like within tolerance.
//	ErrLoopNotAllowed        - self-loop was attempted.
//	ErrMultiEdgeNotAllowed   - parallel edge was attempted.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates an operation referenced an id outside [0, N).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrSizeMismatch indicates that two sizes supplied by the caller disagree
	// (for example H*W versus the node count).
	ErrSizeMismatch = errors.New("core: size mismatch")

	// ErrNoGeoLayer indicates that a stage requiring GEO adjacency ran before
	// any GEO constructor.
	ErrNoGeoLayer = errors.New("core: geo layer not built")

	// ErrNonIntegerCoordinate indicates a coordinate that cannot be rounded to
	// an integer lattice position within tolerance.
	ErrNonIntegerCoordinate = errors.New("core: coordinate is not integer-like")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrUnknownNeighborhood indicates an unrecognised neighborhood name.
	ErrUnknownNeighborhood = errors.New("core: unknown neighborhood")
)

// Unassigned is the district label of a node that has not been claimed.
const Unassigned int32 = -1

// Neighborhood selects lattice connectivity.
type Neighborhood int

const (
	// Rook is 4-connectivity: E, N, W, S.
	Rook Neighborhood = iota
	// Queen is 8-connectivity: Rook plus the four diagonals.
	Queen
)

// String returns "rook" or "queen".
func (n Neighborhood) String() string {
	switch n {
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	default:
		return fmt.Sprintf("Neighborhood(%d)", int(n))
	}
}

// ParseNeighborhood maps "rook"/"queen" (case-insensitive) to a Neighborhood.
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rook":
		return Rook, nil
	case "queen":
		return Queen, nil
	default:
		return Rook, fmt.Errorf("%w: %q", ErrUnknownNeighborhood, s)
	}
}

// Offsets returns the unit neighbour offsets probed for this neighborhood.
// The order is stable: rook offsets first, then diagonals.
func (n Neighborhood) Offsets() [][2]int {
	if n == Queen {
		return [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	}
	return [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
}

// Node is the flat per-node record handed to downstream consumers.
type Node struct {
	// ID is the dense identifier in [0, N).
	ID uint32
	// X, Y are the planar coordinates.
	X, Y float64
	// Opinion is the synthesized scalar; zero until a synthesizer runs.
	Opinion float64
	// District is the label in [0, K) or Unassigned.
	District int32
	// IsSeed marks district anchor nodes.
	IsSeed bool
}

// GeoEdge is a canonical undirected geographic adjacency (U < V).
type GeoEdge struct {
	U, V    uint32
	Weight  float64
	Barrier bool
}

// SocialEdge is one preferential-attachment tie. U is the node that attached,
// V the existing node it chose.
type SocialEdge struct {
	U, V   uint32
	Weight float64
}

// Graph is the layered graph. It is built once by constructors and treated as
// read-only by every synthesis stage. It is not safe for concurrent mutation.
type Graph struct {
	xs, ys []float64

	geo      []GeoEdge
	geoIndex map[uint64]struct{} // canonical pair key -> present
	geoAdj   [][]uint32
	geoBuilt bool

	social      []SocialEdge
	socialIndex map[uint64]struct{}
	socialAdj   [][]uint32
	socialBuilt bool
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		geoIndex:    make(map[uint64]struct{}),
		socialIndex: make(map[uint64]struct{}),
	}
}

// pairKey packs an unordered pair into a single map key.
func pairKey(u, v uint32) uint64 {
	if u > v {
		u, v = v, u
	}
	return uint64(u)<<32 | uint64(v)
}
