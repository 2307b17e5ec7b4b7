package maze

// Direction is one of the four orthogonal moves on the grid.
type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

// Directions lists every direction in the order right, left, up, down.
var Directions = [4]Direction{Right, Left, Up, Down}

var deltas = map[Direction]Position{
	Right: {X: 1, Y: 0},
	Left:  {X: -1, Y: 0},
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
}

// Delta returns the column and row offsets of a single step in d.
func (d Direction) Delta() (int, int) {
	delta := deltas[d]
	return delta.X, delta.Y
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}
