package gridgraph

import "math"

// ExpandIsland finds the cheapest chain of cells joining island srcComp to
// island dstComp (numbered as in Islands). Entering a land cell
// is free and entering a water cell costs 1, so cost is the number of water
// cells that must become land. path lists row-major indices from a source
// cell to the first destination cell reached, both included.
//
// The search is a 0-1 BFS over cost layers: zero-cost moves extend the
// current layer, unit-cost moves seed the next one.
//
// Complexity: O(W×H×d) time, O(W×H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	labels, count := gg.Islands()
	if srcComp < 0 || srcComp >= count || dstComp < 0 || dstComp >= count {
		return nil, 0, ErrComponentIndex
	}

	n := len(gg.cells)
	dist := make([]int, n)
	prev := make([]int, n)
	settled := make([]bool, n)
	var layer []int
	for i := range dist {
		dist[i], prev[i] = math.MaxInt, -1
		if labels[i] == srcComp {
			dist[i] = 0
			layer = append(layer, i)
		}
	}

	offsets := gg.NeighborOffsets()
	target := -1
	for c := 0; len(layer) > 0 && target < 0; c++ {
		var next []int
		for qi := 0; qi < len(layer); qi++ {
			u := layer[qi]
			if settled[u] {
				continue
			}
			settled[u] = true
			if labels[u] == dstComp {
				target = u
				break
			}
			ux, uy := gg.Coordinate(u)
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.InBounds(vx, vy) {
					continue
				}
				v := gg.Index(vx, vy)
				step := 1
				if gg.IsLand(vx, vy) {
					step = 0
				}
				if c+step < dist[v] {
					dist[v], prev[v] = c+step, u
					if step == 0 {
						layer = append(layer, v)
					} else {
						next = append(next, v)
					}
				}
			}
		}
		layer = next
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}

// Bridged returns a copy of gg in which water cells on cheapest joining
// paths have become land (value LandThreshold) until one island remains,
// together with the number of converted cells. Island 0 absorbs the next
// island on every round. gg itself is not modified.
// Returns ErrNoLand for an all-water mask.
//
// Complexity: O(C×W×H×d) for C initial islands.
func (gg *GridGraph) Bridged() (*GridGraph, int, error) {
	out := gg.clone()
	converted := 0
	for {
		_, count := out.Islands()
		switch count {
		case 0:
			return nil, 0, ErrNoLand
		case 1:
			return out, converted, nil
		}
		path, _, err := out.ExpandIsland(0, 1)
		if err != nil {
			return nil, converted, err
		}
		for _, idx := range path {
			if out.cells[idx] < out.LandThreshold {
				out.cells[idx] = out.LandThreshold
				converted++
			}
		}
	}
}
