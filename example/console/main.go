// Command console builds one maze, solves it, and prints the result to the terminal.
//
// Step notifications are logged as they happen when ANIMATE=true, with STEP_DELAY_MS
// between them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/generation"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/pathfinding"
)

func main() {
	var (
		width     int
		height    int
		seed      int64
		algorithm string
	)
	flag.IntVar(&width, "width", 21, "maze width")
	flag.IntVar(&height, "height", 21, "maze height")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	flag.StringVar(&algorithm, "algorithm", pathfinding.AStarName, fmt.Sprintf("pathfinder, one of %v", pathfinding.Names()))
	flag.Parse()

	appLogger, _ := logger.New("CONSOLE", logger.ColorBlue, os.Stdout)
	stepLogger, _ := logger.New("STEP", logger.ColorPurple, os.Stdout)

	delay := time.Duration(config.Envs.StepDelayMS) * time.Millisecond
	observer := func(c maze.Cell, role maze.Role) {
		if !config.Envs.Animate {
			return
		}
		stepLogger.Info(fmt.Sprintf("%s %s", role, c.Position()))
		time.Sleep(delay)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m, err := maze.New(width, height, maze.WithSource(maze.NewSource(seed)))
	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}

	solver, err := pathfinding.New(algorithm, pathfinding.WithObserver(observer, config.Envs.Animate))
	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}

	ctx := context.Background()
	g := generation.NewDepthFirst(generation.WithObserver(observer, config.Envs.Animate))
	if err := g.Generate(ctx, m); err != nil {
		appLogger.Error(fmt.Sprintf("generating maze: %s", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("generated %dx%d maze with seed %d", m.Cols(), m.Rows(), seed))

	result, err := solver.Solve(ctx, m)
	if errors.Is(err, pathfinding.ErrNoPathFound) {
		appLogger.Warning(fmt.Sprintf("%s: %s", solver.Name(), err))
		fmt.Print(m)
		os.Exit(2)
	}
	if err != nil {
		appLogger.Error(fmt.Sprintf("solving maze: %s", err))
		os.Exit(1)
	}

	appLogger.Info(fmt.Sprintf("%s reached the exit in %d steps, %d explored", result.Algorithm, result.Steps, result.Explored))
	fmt.Println(strings.Join(m.RenderPath(result.Path), "\n"))
}
