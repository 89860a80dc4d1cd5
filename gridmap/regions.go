package gridmap

// Regions labels contiguous areas of passable cells.
// Label -1 marks an impassable cell; passable cells carry a label ≥ 0 shared
// by every cell reachable from them under the chosen connectivity.
type Regions struct {
	labels []int32
	count  int
}

// Regions finds all contiguous regions of cells whose code satisfies
// passable, according to conn. Labels are assigned in row-major order of the
// first cell discovered, so they are deterministic for a given map.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and the BFS queue.
func (m *GridMap) Regions(passable func(code uint8) bool, conn Connectivity) *Regions {
	total := len(m.codes)
	labels := make([]int32, total)
	for i := range labels {
		labels[i] = -1
	}
	offsets := Offsets(conn)
	queue := make([]int, 0, 64)
	var next int32

	for i0 := 0; i0 < total; i0++ {
		if labels[i0] >= 0 || !passable(m.codes[i0]) {
			continue
		}
		// BFS flood fill from i0
		labels[i0] = next
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := m.CellOf(queue[qi])
			for _, d := range offsets {
				v := u.Add(d)
				if !m.InBounds(v) {
					continue
				}
				vi := m.IndexOf(v)
				if labels[vi] >= 0 || !passable(m.codes[vi]) {
					continue
				}
				labels[vi] = next
				queue = append(queue, vi)
			}
		}
		next++
	}

	return &Regions{labels: labels, count: int(next)}
}

// Count returns the number of regions found.
func (r *Regions) Count() int { return r.count }

// Label returns the region label of row-major index i, or -1 if the cell is impassable.
func (r *Regions) Label(i int) int { return int(r.labels[i]) }

// Same reports whether the cells at indices a and b are both passable and
// belong to the same region.
// Complexity: O(1).
func (r *Regions) Same(a, b int) bool {
	la := r.labels[a]

	return la >= 0 && la == r.labels[b]
}

// Members collects the row-major indices of every region, ordered by label.
// Complexity: O(W·H).
func (r *Regions) Members() [][]int {
	out := make([][]int, r.count)
	for i, l := range r.labels {
		if l >= 0 {
			out[l] = append(out[l], i)
		}
	}

	return out
}
