package gridgraph

import "github.com/katalvlaran/frankengrid/core"

// Connectivity selects which neighbouring cells touch: orthogonal (Conn4) or
// orthogonal plus diagonal (Conn8).
type Connectivity int

const (
	// Conn4 matches the rook lattice.
	Conn4 Connectivity = iota
	// Conn8 matches the queen lattice.
	Conn8
)

// ConnFor returns the connectivity whose islands coincide with the connected
// components of a GEO layer built with mode.
func ConnFor(mode core.Neighborhood) Connectivity {
	if mode == core.Queen {
		return Conn8
	}
	return Conn4
}

var (
	offsets4 = [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	offsets8 = [][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
)

// GridOptions tunes how a mask is read.
type GridOptions struct {
	// LandThreshold is the smallest cell value that counts as land.
	LandThreshold int
	Conn          Connectivity
}

// DefaultGridOptions treats values ≥ 1 as land with Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{LandThreshold: 1, Conn: Conn4}
}

// GridGraph is a rectangular land/water mask. Cell (x, y) sits in column x
// and row y; cells are stored row-major, so index = y·Width + x, which is
// also the node id a full lattice would give the cell.
type GridGraph struct {
	Width, Height int
	Conn          Connectivity
	LandThreshold int

	cells []int
}

// NewGridGraph copies values into a GridGraph.
// Returns ErrEmptyGrid without rows or columns, ErrNonRectangular for
// ragged rows.
// Complexity: O(W×H).
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(values[0])
	cells := make([]int, 0, len(values)*w)
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}
	return &GridGraph{
		Width:         w,
		Height:        len(values),
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		cells:         cells,
	}, nil
}

// From2D is NewGridGraph with the default threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// clone returns an independent copy.
func (gg *GridGraph) clone() *GridGraph {
	out := *gg
	out.cells = append([]int(nil), gg.cells...)
	return &out
}

// InBounds reports whether (x, y) lies on the mask.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x, y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.cells[gg.Index(x, y)] >= gg.LandThreshold
}

// NeighborOffsets returns the (dx, dy) steps of gg.Conn. Callers must not
// modify the slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	if gg.Conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// Index maps (x, y) to its row-major index.
func (gg *GridGraph) Index(x, y int) int { return y*gg.Width + x }

// Coordinate converts a row-major index back to (x, y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// LandCells returns the (x, y) of every land cell in row-major order. This
// is the node order of a masked lattice.
func (gg *GridGraph) LandCells() [][2]int {
	var out [][2]int
	for i, v := range gg.cells {
		if v >= gg.LandThreshold {
			x, y := gg.Coordinate(i)
			out = append(out, [2]int{x, y})
		}
	}
	return out
}

// LandCount returns the number of land cells.
func (gg *GridGraph) LandCount() int {
	n := 0
	for _, v := range gg.cells {
		if v >= gg.LandThreshold {
			n++
		}
	}
	return n
}
