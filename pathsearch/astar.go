package pathsearch

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/pathgrid/costmodel"
	"github.com/katalvlaran/pathgrid/gridmap"
)

// heuristicScale turns Euclidean distance into an admissible estimate under
// costmodel.Direct: one diagonal step (length √2) estimates exactly DiagonalCost.
var heuristicScale = costmodel.DiagonalCost / math.Sqrt2

// astar is the direct variant: 8-directional A* over the full grid.
type astar struct {
	m     *gridmap.GridMap
	model costmodel.Direct
}

func newAStar(m *gridmap.GridMap) *astar {
	return &astar{m: m}
}

func (a *astar) heuristic(from, goal gridmap.Cell) float64 {
	return heuristicScale * math.Hypot(float64(goal.X-from.X), float64(goal.Y-from.Y))
}

// find runs A* from start to goal. State maps only grow with the explored
// area, so queries on large mostly-open maps stay proportional to the answer.
func (a *astar) find(start, goal int) (Result, error) {
	var (
		goalCell = a.m.CellOf(goal)
		offsets  = gridmap.Offsets(gridmap.Conn8)
		gScore   = map[int]float64{start: 0}
		parent   = make(map[int]int)
		closed   = make(map[int]bool)
		open     openQueue
		seq      int
		expanded int
	)

	h0 := a.heuristic(a.m.CellOf(start), goalCell)
	heap.Push(&open, &openItem{idx: start, g: 0, f: h0, h: h0, seq: seq})

	for open.Len() > 0 {
		cur := heap.Pop(&open).(*openItem)
		if closed[cur.idx] {
			continue
		}
		closed[cur.idx] = true
		expanded++

		if cur.idx == goal {
			return Result{
				Path:     cellsOf(a.m, rebuild(parent, start, goal)),
				Cost:     cur.g,
				Expanded: expanded,
				Found:    true,
			}, nil
		}

		c := a.m.CellOf(cur.idx)
		for _, d := range offsets {
			next := c.Add(d)
			if !a.m.InBounds(next) {
				continue
			}
			ni := a.m.IndexOf(next)
			if closed[ni] {
				continue
			}
			step, ok := a.model.StepCost(a.m.Code(ni), d.Diagonal())
			if !ok {
				continue
			}
			ng := cur.g + step
			if old, seen := gScore[ni]; seen && ng >= old {
				continue
			}
			gScore[ni] = ng
			parent[ni] = cur.idx
			h := a.heuristic(next, goalCell)
			seq++
			heap.Push(&open, &openItem{idx: ni, g: ng, f: ng + h, h: h, seq: seq})
		}
	}

	return Result{Expanded: expanded}, nil
}

func (a *astar) stats(*Stats) {}

// rebuild walks parent links back from goal and returns start → goal.
func rebuild(parent map[int]int, start, goal int) []int {
	path := []int{goal}
	for at := goal; at != start; {
		at = parent[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
