package pathfinding

import "github.com/beka-birhanu/vinom-maze/maze"

// openItem is an entry of the A* open set.
type openItem struct {
	pos   maze.Position
	f     int
	h     int
	seq   int // insertion order
	index int // position in the heap, maintained by Swap
}

// openSet is a min-heap ordered by f, then h, then insertion order.
type openSet []*openItem

func (q openSet) Len() int { return len(q) }

func (q openSet) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	return q[i].seq < q[j].seq
}

func (q openSet) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *openSet) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	item.index = -1
	return item
}
