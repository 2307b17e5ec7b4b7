/*
Package maze provides the grid model shared by the generation and pathfinding packages.

A Maze is a rectangular grid of Cells addressed by (column, row). Both dimensions are odd and
at least 3, so every cell whose coordinates are both odd can be joined to its odd neighbours two
steps away by clearing the single connector cell between them. The entrance sits on column 0 and
the exit on the last column, each on an odd row.

A Maze is mutated in place and is not safe for concurrent use.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	minDimension = 3

	wallRune = '#'
	openRune = '.'
	pathRune = 'o'
)

var (
	// ErrInvalidDimensions is returned when a maze is requested with a non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// Source is the randomness a maze and its generator draw from.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a seeded random source. A seed of 0 means a time-seeded source.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Option configures a Maze at construction time.
type Option func(*Maze)

// WithSource sets the random source used to pick the entrance and exit rows.
func WithSource(src Source) Option {
	return func(m *Maze) {
		if src != nil {
			m.src = src
		}
	}
}

// Maze is a rectangular grid of cells with a designated entrance and exit.
type Maze struct {
	rows     int       // Number of rows, always odd and >= 3
	cols     int       // Number of columns, always odd and >= 3
	grid     [][]*Cell // grid[y][x]
	entrance *Cell
	exit     *Cell
	src      Source
}

// New allocates an all-wall maze of the given dimensions and opens an entrance and an exit.
// Even dimensions are bumped up by one and anything smaller than 3 becomes 3.
func New(width, height int, opts ...Option) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	m := &Maze{
		rows: oddDimension(height),
		cols: oddDimension(width),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.src == nil {
		m.src = NewSource(0)
	}

	m.grid = make([][]*Cell, m.rows)
	for y := range m.grid {
		m.grid[y] = make([]*Cell, m.cols)
		for x := range m.grid[y] {
			m.grid[y][x] = &Cell{X: x, Y: y, IsWall: true}
		}
	}

	m.createEntranceAndExit()
	return m, nil
}

// oddDimension forces a dimension to an odd value of at least minDimension.
func oddDimension(v int) int {
	if v%2 == 0 {
		v++
	}
	return max(v, minDimension)
}

// createEntranceAndExit picks an odd row on the first and last column for each end.
// The two rows are drawn independently and may coincide.
func (m *Maze) createEntranceAndExit() {
	m.entrance = m.grid[m.randomOddRow()][0]
	m.entrance.IsWall = false

	m.exit = m.grid[m.randomOddRow()][m.cols-1]
	m.exit.IsWall = false
}

func (m *Maze) randomOddRow() int {
	return m.src.Intn(m.rows/2)*2 + 1
}

// Reset turns every cell back into an unvisited wall and picks a new entrance and exit.
func (m *Maze) Reset() {
	for _, row := range m.grid {
		for _, cell := range row {
			cell.IsWall = true
			cell.Visited = false
		}
	}
	m.createEntranceAndExit()
}

// Rows returns the number of rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Maze) Cols() int { return m.cols }

// Entrance returns the entrance cell on column 0.
func (m *Maze) Entrance() *Cell { return m.entrance }

// Exit returns the exit cell on the last column.
func (m *Maze) Exit() *Cell { return m.exit }

// Source returns the random source the maze was built with.
func (m *Maze) Source() Source { return m.src }

// InBound reports whether (x, y) lies inside the grid.
func (m *Maze) InBound(x, y int) bool {
	return x >= 0 && x < m.cols && y >= 0 && y < m.rows
}

// Cell returns the cell at column x, row y. It panics when (x, y) is outside the grid.
func (m *Maze) Cell(x, y int) *Cell {
	if !m.InBound(x, y) {
		panic(fmt.Sprintf("maze: cell (%d,%d) out of range %dx%d", x, y, m.cols, m.rows))
	}
	return m.grid[y][x]
}

// CanMove reports whether the neighbour of (x, y) in direction d exists and satisfies pred.
// A nil pred accepts any in-bound neighbour.
func (m *Maze) CanMove(x, y int, d Direction, pred func(*Cell) bool) bool {
	dx, dy := d.Delta()
	nx, ny := x+dx, y+dy
	if !m.InBound(nx, ny) {
		return false
	}
	return pred == nil || pred(m.grid[ny][nx])
}

// Passable is the predicate pathfinders move with: the cell is not a wall.
func Passable(c *Cell) bool {
	return !c.IsWall
}

// Neighbors returns the positions of the passable cells orthogonally adjacent to p,
// in the order right, down, left, up.
func (m *Maze) Neighbors(p Position) []Position {
	result := make([]Position, 0, len(Directions))
	for _, d := range [4]Direction{Right, Down, Left, Up} {
		if m.CanMove(p.X, p.Y, d, Passable) {
			result = append(result, p.Step(d))
		}
	}
	return result
}

// OpenCells returns every non-wall cell in row-major order.
func (m *Maze) OpenCells() []Position {
	var open []Position
	for _, row := range m.grid {
		for _, cell := range row {
			if !cell.IsWall {
				open = append(open, cell.Position())
			}
		}
	}
	return open
}

// Lines renders the maze one string per row, '#' for walls and '.' for open cells.
func (m *Maze) Lines() []string {
	return m.render(nil)
}

// RenderPath renders the maze like Lines with the cells of path drawn as 'o'.
func (m *Maze) RenderPath(path []Position) []string {
	onPath := make(map[Position]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}
	return m.render(onPath)
}

func (m *Maze) render(onPath map[Position]struct{}) []string {
	lines := make([]string, m.rows)
	var sb strings.Builder
	for y, row := range m.grid {
		sb.Reset()
		for _, cell := range row {
			if _, ok := onPath[cell.Position()]; ok {
				sb.WriteRune(pathRune)
				continue
			}
			sb.WriteString(cell.String())
		}
		lines[y] = sb.String()
	}
	return lines
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return strings.Join(m.Lines(), "\n") + "\n"
}
