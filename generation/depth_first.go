// Package generation carves perfect mazes into an all-wall maze.Maze.
package generation

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Option configures a generator.
type Option func(*DepthFirst)

// WithSource overrides the random source. By default the maze's own source is used.
func WithSource(src maze.Source) Option {
	return func(g *DepthFirst) { g.src = src }
}

// WithObserver sets the step callback. With animate false only the finished maze is reported.
func WithObserver(fn maze.StepFunc, animate bool) Option {
	return func(g *DepthFirst) { g.observer = maze.NewObserver(fn, animate) }
}

// DepthFirst is a recursive backtracker. Starting next to the entrance it carves towards
// unvisited cells two steps away in random order, backtracking when a cell has nowhere left
// to go. The result is a spanning tree over the odd-coordinate cells.
type DepthFirst struct {
	src      maze.Source
	observer maze.Observer
}

// frame is one level of the backtracking stack: a cell and the directions still to try.
type frame struct {
	pos  maze.Position
	dirs [4]maze.Direction
	next int
}

// NewDepthFirst creates a depth-first generator.
func NewDepthFirst(opts ...Option) *DepthFirst {
	g := &DepthFirst{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate carves m in place. It expects a freshly constructed or reset maze and returns
// ctx.Err() if the context is cancelled between steps.
func (g *DepthFirst) Generate(ctx context.Context, m *maze.Maze) error {
	src := g.src
	if src == nil {
		src = m.Source()
	}

	start := maze.Position{X: 1, Y: m.Entrance().Y}
	stack := []*frame{g.enter(m, src, start)}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		top := stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++
		if !canCarve(m, top.pos, d) {
			continue
		}

		connector := top.pos.Step(d)
		g.clear(m.Cell(connector.X, connector.Y))
		stack = append(stack, g.enter(m, src, connector.Step(d)))
	}

	if !g.observer.Animated() {
		for _, p := range m.OpenCells() {
			g.observer.Final(m.Cell(p.X, p.Y), maze.RoleCarved)
		}
	}
	return nil
}

// enter clears the cell at p and draws the order its four directions will be tried in.
func (g *DepthFirst) enter(m *maze.Maze, src maze.Source, p maze.Position) *frame {
	g.clear(m.Cell(p.X, p.Y))

	f := &frame{pos: p, dirs: maze.Directions}
	src.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// clear turns the cell into a visited corridor.
func (g *DepthFirst) clear(c *maze.Cell) {
	c.IsWall = false
	c.Visited = true
	g.observer.Step(c, maze.RoleCarved)
}

// canCarve reports whether a corridor can be dug from p in direction d: the connector cell
// must not lie on the outer border and the cell beyond it must be unvisited.
func canCarve(m *maze.Maze, p maze.Position, d maze.Direction) bool {
	connector := p.Step(d)
	if connector.X <= 0 || connector.X >= m.Cols()-1 || connector.Y <= 0 || connector.Y >= m.Rows()-1 {
		return false
	}
	return m.CanMove(connector.X, connector.Y, d, unvisited)
}

func unvisited(c *maze.Cell) bool {
	return !c.Visited
}
