package pathfinding

import (
	"context"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAStarConcreteMaze(t *testing.T) {
	m := concreteMaze(t)

	type step struct {
		pos  maze.Position
		role maze.Role
	}
	var steps []step
	solver := NewAStar(WithObserver(func(c maze.Cell, role maze.Role) {
		steps = append(steps, step{pos: c.Position(), role: role})
	}, true))

	result, err := solver.Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, AStarName, result.Algorithm)
	assert.Equal(t, []maze.Position{
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1},
	}, result.Path)
	assert.Equal(t, 4, result.Steps)
	assert.Equal(t, 5, result.Explored)

	var frontier, final []maze.Position
	for _, s := range steps {
		switch s.role {
		case maze.RoleFrontier:
			frontier = append(frontier, s.pos)
		case maze.RoleFinalPath:
			final = append(final, s.pos)
		}
	}
	assert.Equal(t, []maze.Position{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 3, Y: 2},
	}, frontier)
	assert.Equal(t, []maze.Position{
		{X: 4, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}, final)
}

func TestAStarSeededGolden(t *testing.T) {
	t.Run("5x5", func(t *testing.T) {
		m := generatedMaze(t, 5, 5, 2)

		result, err := NewAStar().Solve(context.Background(), m)
		require.NoError(t, err)
		assert.Equal(t, []maze.Position{
			{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3},
			{X: 3, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 1}, {X: 4, Y: 1},
		}, result.Path)
		assert.Equal(t, 8, result.Steps)
		assert.Equal(t, 9, result.Explored)
		assert.Equal(t, []string{
			"#####",
			"oo#oo",
			"#o#o#",
			"#ooo#",
			"#####",
		}, m.RenderPath(result.Path))
	})

	t.Run("11x9", func(t *testing.T) {
		m := generatedMaze(t, 11, 9, 2)

		result, err := NewAStar().Solve(context.Background(), m)
		require.NoError(t, err)
		assert.Equal(t, 18, result.Steps)
		assert.Equal(t, 19, result.Explored)
		assert.Equal(t, []string{
			"###########",
			"#ooooooo#.#",
			"#o#####o#.#",
			"#o#...#o#.#",
			"#o###.#o#.#",
			"oo#...#oooo",
			"###.#####.#",
			"#.........#",
			"###########",
		}, m.RenderPath(result.Path))
	})
}

func TestAStarMatchesBFS(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		m := generatedMaze(t, 25, 19, seed)

		result, err := NewAStar().Solve(context.Background(), m)
		require.NoError(t, err)

		assert.Equal(t, bfsDistance(m), result.Steps, "seed %d", seed)
		require.NotEmpty(t, result.Path)
		assert.Equal(t, m.Entrance().Position(), result.Path[0])
		assert.Equal(t, m.Exit().Position(), result.Path[len(result.Path)-1])
		requireContiguous(t, m, result.Path[0], result.Path[1:])
	}
}

func TestAStarTieBreak(t *testing.T) {
	// Entrance on row 1, exit on row 3 of an open 7x5 room.
	m := openRoom(t, 7, 5, 0, 1)

	first, err := NewAStar().Solve(context.Background(), m)
	require.NoError(t, err)
	second, err := NewAStar().Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, bfsDistance(m), first.Steps)
	assert.Equal(t, []maze.Position{
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1},
		{X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 3}, {X: 6, Y: 3},
	}, first.Path)
	assert.Equal(t, 9, first.Explored)
}

func TestAStarNoPathFound(t *testing.T) {
	t.Run("Ungenerated maze", func(t *testing.T) {
		m, err := maze.New(9, 9)
		require.NoError(t, err)

		result, err := NewAStar().Solve(context.Background(), m)
		assert.ErrorIs(t, err, ErrNoPathFound)
		assert.Empty(t, result.Path)
		assert.Equal(t, 1, result.Explored)
	})

	t.Run("Exit sealed off", func(t *testing.T) {
		m := concreteMaze(t)
		m.Cell(3, 1).IsWall = true

		_, err := NewAStar().Solve(context.Background(), m)
		assert.ErrorIs(t, err, ErrNoPathFound)
	})
}

func TestAStarBatchedNotifications(t *testing.T) {
	m := concreteMaze(t)

	var roles []maze.Role
	solver := NewAStar(WithObserver(func(_ maze.Cell, role maze.Role) {
		roles = append(roles, role)
	}, false))

	result, err := solver.Solve(context.Background(), m)
	require.NoError(t, err)

	require.Len(t, roles, len(result.Path))
	for _, r := range roles {
		assert.Equal(t, maze.RoleFinalPath, r)
	}
}

func TestAStarLeavesMazeUntouched(t *testing.T) {
	m := generatedMaze(t, 15, 15, 8)
	before := m.Lines()

	_, err := NewAStar().Solve(context.Background(), m)
	require.NoError(t, err)
	first, err := NewAStar().Solve(context.Background(), m)
	require.NoError(t, err)
	second, err := NewAStar().Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, before, m.Lines())
	assert.Equal(t, first, second)
}

func TestAStarCancelled(t *testing.T) {
	m := generatedMaze(t, 15, 15, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAStar().Solve(ctx, m)
	assert.ErrorIs(t, err, context.Canceled)
}
