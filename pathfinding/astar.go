package pathfinding

import (
	"container/heap"
	"context"
	"fmt"
	"slices"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// searchNode is the per-cell bookkeeping of an A* run. f is always g + h.
type searchNode struct {
	g       int  // Cost from the entrance
	h       int  // Manhattan distance to the exit
	parent  int  // Arena index of the predecessor, -1 for none
	reached bool // Whether any route to the cell has been found
}

// AStar finds a shortest route using A* with unit step costs.
//
// Ties on f are broken by the lower h, then by the order nodes entered the open set.
type AStar struct {
	opts Options
}

// NewAStar creates an A* solver.
func NewAStar(opts ...Option) *AStar {
	return &AStar{opts: applyOptions(opts)}
}

// Name returns the registry name of the solver.
func (a *AStar) Name() string { return AStarName }

// Solve searches from the entrance to the exit of m. It returns ErrNoPathFound when the open
// set is exhausted before the exit is closed.
func (a *AStar) Solve(ctx context.Context, m *maze.Maze) (Result, error) {
	cols := m.Cols()
	index := func(p maze.Position) int { return p.Y*cols + p.X }

	start := m.Entrance().Position()
	exit := m.Exit().Position()

	// The search state lives beside the maze, indexed like the grid.
	nodes := make([]searchNode, m.Rows()*cols)
	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < cols; x++ {
			p := maze.Position{X: x, Y: y}
			nodes[index(p)] = searchNode{h: p.Manhattan(exit), parent: -1}
		}
	}
	closed := make([]bool, len(nodes))
	inOpen := make(map[int]*openItem)

	open := make(openSet, 0)
	heap.Init(&open)
	seq := 0
	push := func(p maze.Position, n *searchNode) {
		item := &openItem{pos: p, f: n.g + n.h, h: n.h, seq: seq}
		seq++
		heap.Push(&open, item)
		inOpen[index(p)] = item
	}

	nodes[index(start)].reached = true
	push(start, &nodes[index(start)])

	explored := 0
	for {
		if err := ctx.Err(); err != nil {
			return Result{Algorithm: AStarName, Explored: explored}, err
		}
		if open.Len() == 0 {
			return Result{Algorithm: AStarName, Explored: explored},
				fmt.Errorf("%w: open set exhausted after %d expansions", ErrNoPathFound, explored)
		}

		current := heap.Pop(&open).(*openItem)
		ci := index(current.pos)
		delete(inOpen, ci)
		closed[ci] = true
		explored++
		a.opts.observer.Step(m.Cell(current.pos.X, current.pos.Y), maze.RoleVisited)

		if current.pos == exit {
			break
		}

		g := nodes[ci].g + 1
		for _, p := range m.Neighbors(current.pos) {
			ni := index(p)
			if closed[ni] {
				continue
			}

			neighbor := &nodes[ni]
			if neighbor.reached && g+neighbor.h >= neighbor.g+neighbor.h {
				continue
			}
			neighbor.g = g
			neighbor.parent = ci
			neighbor.reached = true

			if item, ok := inOpen[ni]; ok {
				item.f = neighbor.g + neighbor.h
				heap.Fix(&open, item.index)
				continue
			}
			push(p, neighbor)
			a.opts.observer.Step(m.Cell(p.X, p.Y), maze.RoleFrontier)
		}
	}

	path := a.reconstructPath(m, nodes, index(exit))
	return Result{
		Algorithm: AStarName,
		Path:      path,
		Steps:     len(path) - 1,
		Explored:  explored,
	}, nil
}

// reconstructPath follows parents back from the exit, reporting each cell as part of the
// final route, and returns the route in entrance-to-exit order.
func (a *AStar) reconstructPath(m *maze.Maze, nodes []searchNode, exit int) []maze.Position {
	cols := m.Cols()
	var path []maze.Position
	for i := exit; i != -1; i = nodes[i].parent {
		p := maze.Position{X: i % cols, Y: i / cols}
		a.opts.observer.Final(m.Cell(p.X, p.Y), maze.RoleFinalPath)
		path = append(path, p)
	}
	slices.Reverse(path)
	return path
}
