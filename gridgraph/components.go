package gridgraph

// Water labels water cells in the result of Islands.
const Water = -1

// Islands labels every land cell with the index of its island under gg.Conn.
// Islands are numbered in row-major order of their first cell; water cells
// get Water.
// Complexity: O(W×H×d) time, O(W×H) memory, d = 4 or 8.
func (gg *GridGraph) Islands() (labels []int, count int) {
	labels = make([]int, len(gg.cells))
	for i := range labels {
		labels[i] = Water
	}
	offsets := gg.NeighborOffsets()
	var stack []int
	for i, v := range gg.cells {
		if v < gg.LandThreshold || labels[i] != Water {
			continue
		}
		labels[i] = count
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ux, uy := gg.Coordinate(u)
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.IsLand(vx, vy) {
					continue
				}
				if j := gg.Index(vx, vy); labels[j] == Water {
					labels[j] = count
					stack = append(stack, j)
				}
			}
		}
		count++
	}
	return labels, count
}
