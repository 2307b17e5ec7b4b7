package maze

import "fmt"

// Cell represents a single grid position of the maze.
type Cell struct {
	X       int  // X is the column of the cell.
	Y       int  // Y is the row of the cell.
	IsWall  bool // IsWall is false once the cell is part of the carved maze.
	Visited bool // Visited marks cells reached during generation.
}

// Position returns the coordinates of the cell.
func (c *Cell) Position() Position {
	return Position{X: c.X, Y: c.Y}
}

// String returns the cell as rendered in a maze dump.
func (c *Cell) String() string {
	if c.IsWall {
		return string(wallRune)
	}
	return string(openRune)
}

// Position is a (column, row) coordinate in the maze grid.
type Position struct {
	X int `json:"x" bson:"x"` // Column index
	Y int `json:"y" bson:"y"` // Row index
}

// Step returns the position one cell away in the given direction.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan distance between p and other.
func (p Position) Manhattan(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
