// Package pathfinding finds a route from a maze's entrance to its exit.
//
// Two solvers are provided:
//
//   - WallFollower: keeps its right hand on the wall. Guaranteed to finish on a perfect maze,
//     not guaranteed to return the shortest route.
//   - AStar: best-first search with the Manhattan distance to the exit as heuristic. Returns a
//     shortest route.
//
// Solvers never mutate the maze. A maze must not be solved and generated concurrently.
package pathfinding

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Solver names accepted by New.
const (
	AStarName        = "astar"
	WallFollowerName = "wall-follower"
)

var (
	// ErrNoPathFound is returned when a solver runs out of moves before reaching the exit.
	ErrNoPathFound = errors.New("no path found")

	// ErrUnknownAlgorithm is returned by New for an unregistered solver name.
	ErrUnknownAlgorithm = errors.New("unknown pathfinding algorithm")
)

// Result contains the outcome of a solve.
type Result struct {
	Algorithm string          // Name of the solver that produced the result
	Path      []maze.Position // Route towards the exit, ending at the exit
	Steps     int             // Number of moves along Path
	Explored  int             // Expanded nodes (A*) or total moves made (wall follower)
}

// Solver finds a route through a generated maze.
type Solver interface {
	Name() string
	Solve(ctx context.Context, m *maze.Maze) (Result, error)
}

// Options holds settings shared by every solver.
type Options struct {
	observer maze.Observer
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithObserver sets the step callback. With animate false only the final route is reported.
func WithObserver(fn maze.StepFunc, animate bool) Option {
	return func(o *Options) { o.observer = maze.NewObserver(fn, animate) }
}

func applyOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the solver registered under name.
func New(name string, opts ...Option) (Solver, error) {
	switch name {
	case AStarName:
		return NewAStar(opts...), nil
	case WallFollowerName:
		return NewWallFollower(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Names lists the registered solver names.
func Names() []string {
	return []string{AStarName, WallFollowerName}
}
