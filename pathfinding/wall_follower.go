package pathfinding

import (
	"context"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// rightHandPriority lists, per heading, the turns to try in order: right turn, straight,
// left turn, reverse.
var rightHandPriority = map[maze.Direction][4]maze.Direction{
	maze.Down:  {maze.Left, maze.Down, maze.Right, maze.Up},
	maze.Left:  {maze.Up, maze.Left, maze.Down, maze.Right},
	maze.Up:    {maze.Right, maze.Up, maze.Left, maze.Down},
	maze.Right: {maze.Down, maze.Right, maze.Up, maze.Left},
}

// WallFollower walks the maze keeping its right hand on the wall.
//
// On a perfect maze it always reaches the exit and the recorded route has no detours, but the
// route is not necessarily the shortest one. Its behaviour on mazes with cycles is undefined;
// a walk that exceeds one move per (cell, heading) state is reported as ErrNoPathFound.
type WallFollower struct {
	opts Options
}

// NewWallFollower creates a right-hand wall follower.
func NewWallFollower(opts ...Option) *WallFollower {
	return &WallFollower{opts: applyOptions(opts)}
}

// Name returns the registry name of the solver.
func (w *WallFollower) Name() string { return WallFollowerName }

// Solve walks from the entrance heading right until it stands on the exit. The returned path
// starts at the first cell after the entrance and ends at the exit.
func (w *WallFollower) Solve(ctx context.Context, m *maze.Maze) (Result, error) {
	pos := m.Entrance().Position()
	exit := m.Exit().Position()
	heading := maze.Right

	var path []maze.Position
	onPath := make(map[maze.Position]struct{})
	maxMoves := 4 * m.Rows() * m.Cols()
	moves := 0

	for pos != exit {
		if err := ctx.Err(); err != nil {
			return Result{Algorithm: WallFollowerName, Explored: moves}, err
		}
		if moves >= maxMoves {
			return Result{Algorithm: WallFollowerName, Explored: moves},
				fmt.Errorf("%w: walker still wandering after %d moves", ErrNoPathFound, moves)
		}

		current := m.Cell(pos.X, pos.Y)
		w.opts.observer.Step(current, maze.RoleCurrent)

		next, ok := nextMove(m, pos, heading)
		if !ok {
			return Result{Algorithm: WallFollowerName, Explored: moves},
				fmt.Errorf("%w: walled in at %s", ErrNoPathFound, pos)
		}
		w.opts.observer.Step(current, maze.RoleVisited)

		heading = next
		pos = pos.Step(next)
		moves++

		// Stepping back onto the route means the last cell was a dead end.
		if _, seen := onPath[pos]; seen {
			delete(onPath, path[len(path)-1])
			path = path[:len(path)-1]
			continue
		}
		path = append(path, pos)
		onPath[pos] = struct{}{}
	}

	for _, p := range path {
		w.opts.observer.Final(m.Cell(p.X, p.Y), maze.RoleFinalPath)
	}

	return Result{
		Algorithm: WallFollowerName,
		Path:      path,
		Steps:     len(path),
		Explored:  moves,
	}, nil
}

// nextMove picks the first open direction in the right-hand order for the given heading.
func nextMove(m *maze.Maze, pos maze.Position, heading maze.Direction) (maze.Direction, bool) {
	for _, d := range rightHandPriority[heading] {
		if m.CanMove(pos.X, pos.Y, d, maze.Passable) {
			return d, true
		}
	}
	return heading, false
}
