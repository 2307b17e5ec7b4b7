package pathfinding

import (
	"context"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallFollowerConcreteMaze(t *testing.T) {
	m := concreteMaze(t)

	var current, final []maze.Position
	solver := NewWallFollower(WithObserver(func(c maze.Cell, role maze.Role) {
		switch role {
		case maze.RoleCurrent:
			current = append(current, c.Position())
		case maze.RoleFinalPath:
			final = append(final, c.Position())
		}
	}, true))

	result, err := solver.Solve(context.Background(), m)
	require.NoError(t, err)

	route := []maze.Position{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}}
	assert.Equal(t, WallFollowerName, result.Algorithm)
	assert.Equal(t, route, result.Path)
	assert.Equal(t, 4, result.Steps)
	assert.Equal(t, 12, result.Explored, "dead end below the first corridor is walked and retraced")
	assert.Equal(t, route, final)

	assert.Equal(t, []maze.Position{
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3},
		{X: 2, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 1},
	}, current)
}

func TestWallFollowerSeededGolden(t *testing.T) {
	m := generatedMaze(t, 5, 5, 2)

	result, err := NewWallFollower().Solve(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, []maze.Position{
		{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3},
		{X: 3, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 1}, {X: 4, Y: 1},
	}, result.Path)
	assert.Equal(t, 8, result.Steps)
	assert.Equal(t, 8, result.Explored)
}

func TestWallFollowerOnGeneratedMazes(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		m := generatedMaze(t, 25, 19, seed)

		result, err := NewWallFollower().Solve(context.Background(), m)
		require.NoError(t, err, "seed %d", seed)
		require.NotEmpty(t, result.Path)

		assert.Equal(t, 1, m.Entrance().Position().Manhattan(result.Path[0]), "route starts next to the entrance")
		assert.Equal(t, m.Exit().Position(), result.Path[len(result.Path)-1])
		requireContiguous(t, m, m.Entrance().Position(), result.Path)

		seen := make(map[maze.Position]bool, len(result.Path))
		for _, p := range result.Path {
			assert.False(t, seen[p], "seed %d: %s repeated", seed, p)
			seen[p] = true
		}
		assert.GreaterOrEqual(t, result.Explored, result.Steps)
	}
}

func TestAStarNeverLongerThanWallFollower(t *testing.T) {
	for seed := int64(100); seed < 140; seed++ {
		m := generatedMaze(t, 31, 21, seed)

		follower, err := NewWallFollower().Solve(context.Background(), m)
		require.NoError(t, err)
		astar, err := NewAStar().Solve(context.Background(), m)
		require.NoError(t, err)

		assert.LessOrEqual(t, astar.Steps, follower.Steps, "seed %d", seed)
		// A perfect maze has a single simple route between two cells.
		assert.Equal(t, astar.Path[1:], follower.Path, "seed %d", seed)
	}
}

func TestWallFollowerSmallMazes(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 2}, {9, 1}, {1, 9}} {
		m := generatedMaze(t, dims[0], dims[1], 11)

		result, err := NewWallFollower().Solve(context.Background(), m)
		require.NoError(t, err)
		assert.Equal(t, m.Exit().Position(), result.Path[len(result.Path)-1])
	}
}

func TestWallFollowerNoPathFound(t *testing.T) {
	t.Run("Walled in at the entrance", func(t *testing.T) {
		m, err := maze.New(9, 9)
		require.NoError(t, err)

		result, err := NewWallFollower().Solve(context.Background(), m)
		assert.ErrorIs(t, err, ErrNoPathFound)
		assert.Equal(t, 0, result.Explored)
	})

	t.Run("Exit unreachable", func(t *testing.T) {
		m, err := maze.New(5, 5, maze.WithSource(&scriptedSource{}))
		require.NoError(t, err)
		m.Cell(1, 1).IsWall = false

		result, err := NewWallFollower().Solve(context.Background(), m)
		assert.ErrorIs(t, err, ErrNoPathFound)
		assert.Equal(t, 4*m.Rows()*m.Cols(), result.Explored)
	})
}

func TestWallFollowerCancelled(t *testing.T) {
	m := generatedMaze(t, 15, 15, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWallFollower().Solve(ctx, m)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	_, err := New("dijkstra")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
