package district

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/frankengrid/bfs"
	"github.com/katalvlaran/frankengrid/core"
)

const (
	methodGrow       = "Grow"
	methodContiguous = "Contiguous"
)

// Grow partitions the nodes of g into len(seeds) districts by
// frontier-proportional growth over the GEO layer.
//
// The frontier F_j of district j holds the unassigned GEO neighbours of its
// members. Each step draws x = rng.Float64()·S with S = Σ|F_j|, picks the
// first j whose cumulative frontier size exceeds x, claims
// F_j[rng.IntN(|F_j|)], adds its unassigned neighbours to F_j and removes it
// from every frontier.
//
// When S = 0 while nodes remain, one fallback step runs (no draw):
//   - the lowest-id unassigned node with an assigned neighbour adopts the
//     label of its first such neighbour (adjacency order), and its
//     unassigned neighbours join that frontier;
//   - otherwise the lowest-id unassigned node joins the seed with the
//     smallest |id − seed| (ties go to the lower district).
//
// Every fallback is appended to Result.Fallbacks.
//
// Complexity: O(N·(k + d)) time, O(N·k) worst-case memory.
func Grow(g *core.Graph, seeds []uint32, rng *rand.Rand, opts ...Option) (*Result, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil || !g.HasGeoLayer() {
		return nil, fmt.Errorf("%s: %w", methodGrow, core.ErrNoGeoLayer)
	}
	n, k := g.Order(), len(seeds)
	if k < 1 {
		return nil, fmt.Errorf("%s: k=0: %w", methodGrow, ErrBadSeeds)
	}
	seen := make(map[uint32]struct{}, k)
	for j, s := range seeds {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("%s: seed[%d]=%d out of range [0,%d): %w", methodGrow, j, s, n, ErrBadSeeds)
		}
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%s: seed[%d]=%d repeated: %w", methodGrow, j, s, ErrBadSeeds)
		}
		seen[s] = struct{}{}
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGrow, ErrNeedRandSource)
	}
	if o.requireConnected {
		ok, err := bfs.Connected(g)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodGrow, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: %w", methodGrow, ErrDisconnected)
		}
	}

	gr := &grower{
		g:         g,
		labels:    make([]int32, n),
		frontiers: make([]*frontier, k),
		res:       &Result{Seeds: append([]uint32(nil), seeds...)},
	}
	for i := range gr.labels {
		gr.labels[i] = core.Unassigned
	}
	for j, s := range seeds {
		gr.labels[s] = int32(j)
		gr.frontiers[j] = newFrontier()
	}
	gr.assigned = k
	for j, s := range seeds {
		gr.extend(j, s)
	}

	for gr.assigned < n {
		total := 0
		for _, f := range gr.frontiers {
			total += f.Len()
		}
		if total == 0 {
			gr.fallback()
			continue
		}

		x := rng.Float64() * float64(total)
		j := gr.pick(x)
		f := gr.frontiers[j]
		u := f.At(rng.IntN(f.Len()))
		gr.claim(j, u)
	}

	gr.res.Labels = gr.labels
	return gr.res, nil
}

type grower struct {
	g         *core.Graph
	labels    []int32
	frontiers []*frontier
	assigned  int
	res       *Result
}

// pick returns the district whose cumulative frontier interval contains x.
func (gr *grower) pick(x float64) int {
	cum, last := 0.0, 0
	for j, f := range gr.frontiers {
		if f.Len() == 0 {
			continue
		}
		cum += float64(f.Len())
		last = j
		if x < cum {
			return j
		}
	}
	// x rounded up to the total
	return last
}

// claim assigns u to district j and updates every frontier.
func (gr *grower) claim(j int, u uint32) {
	gr.labels[u] = int32(j)
	gr.assigned++
	gr.extend(j, u)
	for _, f := range gr.frontiers {
		f.Remove(u)
	}
}

// extend adds the unassigned GEO neighbours of u to F_j.
func (gr *grower) extend(j int, u uint32) {
	for _, w := range gr.g.GeoNeighbors(u) {
		if gr.labels[w] == core.Unassigned {
			gr.frontiers[j].Add(w)
		}
	}
}

func (gr *grower) fallback() {
	n := len(gr.labels)
	for i := 0; i < n; i++ {
		u := uint32(i)
		if gr.labels[u] != core.Unassigned {
			continue
		}
		for _, v := range gr.g.GeoNeighbors(u) {
			if gr.labels[v] == core.Unassigned {
				continue
			}
			j := int(gr.labels[v])
			gr.res.Fallbacks = append(gr.res.Fallbacks, FallbackEvent{
				Kind: FallbackAdopt, Node: u, District: int32(j), Via: v, Assigned: gr.assigned,
			})
			gr.claim(j, u)
			return
		}
	}

	// No unassigned node touches a district: isolated node.
	var u uint32
	for i := 0; i < n; i++ {
		if gr.labels[i] == core.Unassigned {
			u = uint32(i)
			break
		}
	}
	best, bestD := 0, -1
	for j, s := range gr.res.Seeds {
		d := int(u) - int(s)
		if d < 0 {
			d = -d
		}
		if bestD < 0 || d < bestD {
			best, bestD = j, d
		}
	}
	gr.res.Fallbacks = append(gr.res.Fallbacks, FallbackEvent{
		Kind: FallbackNearestSeed, Node: u, District: int32(best), Via: gr.res.Seeds[best], Assigned: gr.assigned,
	})
	gr.labels[u] = int32(best)
	gr.assigned++
}

// Contiguous reports whether every district 0..k-1 is non-empty and induces
// a connected GEO subgraph.
func Contiguous(g *core.Graph, labels []int32, k int) (bool, error) {
	if g == nil || !g.HasGeoLayer() {
		return false, fmt.Errorf("%s: %w", methodContiguous, core.ErrNoGeoLayer)
	}
	if len(labels) != g.Order() {
		return false, fmt.Errorf("%s: %d labels for %d nodes: %w", methodContiguous, len(labels), g.Order(), core.ErrSizeMismatch)
	}
	if k < 1 {
		return false, fmt.Errorf("%s: k=%d: %w", methodContiguous, k, ErrBadLabels)
	}
	for i, l := range labels {
		if l < 0 || int(l) >= k {
			return false, fmt.Errorf("%s: label[%d]=%d not in [0,%d): %w", methodContiguous, i, l, k, ErrBadLabels)
		}
	}
	first := make([]int, k)
	size := make([]int, k)
	for j := range first {
		first[j] = -1
	}
	for i, l := range labels {
		if first[l] < 0 {
			first[l] = i
		}
		size[l]++
	}
	for j := 0; j < k; j++ {
		if size[j] == 0 {
			return false, nil
		}
		want := int32(j)
		res, err := bfs.BFS(g, uint32(first[j]), bfs.WithFilterNeighbor(func(_, v uint32) bool {
			return labels[v] == want
		}))
		if err != nil {
			return false, fmt.Errorf("%s: %w", methodContiguous, err)
		}
		if len(res.Order) != size[j] {
			return false, nil
		}
	}
	return true, nil
}

// Attach writes labels and seed flags into nodes (index = node id).
func Attach(nodes []core.Node, res *Result) error {
	if len(nodes) != len(res.Labels) {
		return fmt.Errorf("Attach: %d nodes, %d labels: %w", len(nodes), len(res.Labels), core.ErrSizeMismatch)
	}
	for i := range nodes {
		nodes[i].District = res.Labels[i]
	}
	for _, s := range res.Seeds {
		nodes[s].IsSeed = true
	}
	return nil
}
