package pathfinding

import (
	"context"
	"testing"

	"github.com/beka-birhanu/vinom-maze/generation"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/require"
)

// scriptedSource returns the scripted Intn values in turn (0 once exhausted) and never shuffles.
type scriptedSource struct {
	values []int
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return min(v, n-1)
}

func (s *scriptedSource) Shuffle(int, func(i, j int)) {}

// concreteMaze builds the 5x5 maze carved with the directions always tried as
// right, left, up, down:
//
//	#####
//	.....
//	###.#
//	#...#
//	#####
func concreteMaze(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.New(5, 5, maze.WithSource(&scriptedSource{}))
	require.NoError(t, err)
	require.NoError(t, generation.NewDepthFirst().Generate(context.Background(), m))
	return m
}

// generatedMaze builds and carves a seeded maze.
func generatedMaze(t *testing.T, width, height int, seed int64) *maze.Maze {
	t.Helper()
	m, err := maze.New(width, height, maze.WithSource(maze.NewSource(seed)))
	require.NoError(t, err)
	require.NoError(t, generation.NewDepthFirst().Generate(context.Background(), m))
	return m
}

// openRoom builds a maze whose interior is entirely open, so many routes exist.
func openRoom(t *testing.T, width, height int, rows ...int) *maze.Maze {
	t.Helper()
	m, err := maze.New(width, height, maze.WithSource(&scriptedSource{values: rows}))
	require.NoError(t, err)
	for y := 1; y < m.Rows()-1; y++ {
		for x := 1; x < m.Cols()-1; x++ {
			m.Cell(x, y).IsWall = false
		}
	}
	return m
}

// bfsDistance computes the number of moves on a shortest entrance to exit route, or -1.
func bfsDistance(m *maze.Maze) int {
	start, exit := m.Entrance().Position(), m.Exit().Position()
	dist := map[maze.Position]int{start: 0}
	queue := []maze.Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == exit {
			return dist[p]
		}
		for _, n := range m.Neighbors(p) {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[p] + 1
				queue = append(queue, n)
			}
		}
	}
	return -1
}

// requireContiguous checks that consecutive positions are open orthogonal neighbours.
func requireContiguous(t *testing.T, m *maze.Maze, from maze.Position, path []maze.Position) {
	t.Helper()
	prev := from
	for _, p := range path {
		require.False(t, m.Cell(p.X, p.Y).IsWall, "path crosses wall at %s", p)
		require.Equal(t, 1, prev.Manhattan(p), "path jumps from %s to %s", prev, p)
		prev = p
	}
}
