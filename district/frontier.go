package district

// frontier is an indexed set of node ids: O(1) add, remove and index access.
// Removal swaps the last item into the hole, so item order depends on history
// but is deterministic.
type frontier struct {
	items []uint32
	pos   map[uint32]int
}

func newFrontier() *frontier {
	return &frontier{pos: make(map[uint32]int)}
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) At(i int) uint32 { return f.items[i] }

func (f *frontier) Add(id uint32) {
	if _, ok := f.pos[id]; ok {
		return
	}
	f.pos[id] = len(f.items)
	f.items = append(f.items, id)
}

func (f *frontier) Remove(id uint32) {
	i, ok := f.pos[id]
	if !ok {
		return
	}
	last := len(f.items) - 1
	moved := f.items[last]
	f.items[i] = moved
	f.pos[moved] = i
	f.items = f.items[:last]
	delete(f.pos, id)
}
