package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/generation"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/pathfinding"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension    = 101
	defaultLeaderboardSize = 100

	leaderboardKeyFmt = "leaderboard:%s"
)

var (
	ErrSessionNotFound = errors.New("maze session not found")
	ErrMazeTooLarge    = errors.New("maze dimensions exceed the allowed maximum")
)

// session is one generated maze. Its mutex serialises every algorithm run against the maze.
type session struct {
	id         uuid.UUID
	maze       *maze.Maze
	seed       int64
	generation int
	createdAt  time.Time
	sync.Mutex
}

// MazeSessionManager keeps generated mazes in memory and runs pathfinders against them.
type MazeSessionManager struct {
	sessions        map[uuid.UUID]*session
	runRepo         i.RunRepo
	leaderboard     i.Leaderboard
	logger          i.Logger
	maxDimension    int
	leaderboardSize int64
	observer        maze.StepFunc
	animate         bool
	sync.RWMutex
}

// Config holds the dependencies of a MazeSessionManager. RunRepo and Leaderboard are optional.
type Config struct {
	RunRepo         i.RunRepo
	Leaderboard     i.Leaderboard
	Logger          i.Logger
	MaxDimension    int           // Largest accepted width or height
	LeaderboardSize int64         // Entries kept per algorithm
	Observer        maze.StepFunc // Step callback handed to every algorithm
	Animate         bool          // Deliver every step instead of only end states
}

// NewMazeSessionManager creates a MazeSessionManager.
func NewMazeSessionManager(c *Config) (*MazeSessionManager, error) {
	if c == nil || c.Logger == nil {
		return nil, errors.New("maze session manager requires a logger")
	}

	msm := &MazeSessionManager{
		sessions:        make(map[uuid.UUID]*session),
		runRepo:         c.RunRepo,
		leaderboard:     c.Leaderboard,
		logger:          c.Logger,
		maxDimension:    c.MaxDimension,
		leaderboardSize: c.LeaderboardSize,
		observer:        c.Observer,
		animate:         c.Animate,
	}
	if msm.maxDimension <= 0 {
		msm.maxDimension = defaultMaxDimension
	}
	if msm.leaderboardSize <= 0 {
		msm.leaderboardSize = defaultLeaderboardSize
	}
	return msm, nil
}

// NewSession builds and carves a maze. A seed of 0 picks a time-based seed, which is recorded
// so the maze can be rebuilt.
func (m *MazeSessionManager) NewSession(ctx context.Context, width, height int, seed int64) (domain.MazeSnapshot, error) {
	if width > m.maxDimension || height > m.maxDimension {
		return domain.MazeSnapshot{}, fmt.Errorf("%w: %dx%d > %d", ErrMazeTooLarge, width, height, m.maxDimension)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mz, err := maze.New(width, height, maze.WithSource(maze.NewSource(seed)))
	if err != nil {
		return domain.MazeSnapshot{}, err
	}

	s := &session{maze: mz, seed: seed, createdAt: time.Now().UTC()}
	if err := m.generate(ctx, s); err != nil {
		m.logger.Error(fmt.Sprintf("generating maze %dx%d: %s", width, height, err))
		return domain.MazeSnapshot{}, err
	}

	m.Lock()
	s.id = uuid.New()
	for {
		if _, ok := m.sessions[s.id]; !ok {
			break
		}
		s.id = uuid.New()
	}
	m.sessions[s.id] = s
	m.Unlock()

	m.logger.Info(fmt.Sprintf("created maze %s (%dx%d, seed %d)", s.id, mz.Cols(), mz.Rows(), seed))
	return snapshot(s), nil
}

// Session returns a snapshot of the maze session.
func (m *MazeSessionManager) Session(id uuid.UUID) (domain.MazeSnapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return domain.MazeSnapshot{}, err
	}
	s.Lock()
	defer s.Unlock()
	return snapshot(s), nil
}

// Regenerate resets the session's maze and carves it again from the continuing random source.
func (m *MazeSessionManager) Regenerate(ctx context.Context, id uuid.UUID) (domain.MazeSnapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return domain.MazeSnapshot{}, err
	}

	s.Lock()
	defer s.Unlock()
	s.maze.Reset()
	if err := m.generate(ctx, s); err != nil {
		m.logger.Error(fmt.Sprintf("regenerating maze %s: %s", id, err))
		return domain.MazeSnapshot{}, err
	}

	m.logger.Info(fmt.Sprintf("regenerated maze %s (generation %d)", id, s.generation))
	return snapshot(s), nil
}

// Solve runs the named pathfinder against the session's maze and records the run.
// Failing to record a run is logged and does not fail the solve.
func (m *MazeSessionManager) Solve(ctx context.Context, id uuid.UUID, algorithm string) (pathfinding.Result, error) {
	solver, err := pathfinding.New(algorithm, pathfinding.WithObserver(m.observer, m.animate))
	if err != nil {
		return pathfinding.Result{}, err
	}

	s, err := m.session(id)
	if err != nil {
		return pathfinding.Result{}, err
	}

	s.Lock()
	result, solveErr := solver.Solve(ctx, s.maze)
	run := &domain.Run{
		ID:         uuid.New(),
		MazeID:     id,
		Algorithm:  solver.Name(),
		Rows:       s.maze.Rows(),
		Cols:       s.maze.Cols(),
		Seed:       s.seed,
		Generation: s.generation,
		Found:      solveErr == nil,
		Steps:      result.Steps,
		Explored:   result.Explored,
		Path:       result.Path,
		CreatedAt:  time.Now().UTC(),
	}
	s.Unlock()

	if solveErr != nil {
		if errors.Is(solveErr, context.Canceled) || errors.Is(solveErr, context.DeadlineExceeded) {
			return result, solveErr
		}
		m.logger.Warning(fmt.Sprintf("%s found no route through maze %s: %s", solver.Name(), id, solveErr))
	} else {
		m.logger.Info(fmt.Sprintf("%s solved maze %s in %d steps (%d explored)", solver.Name(), id, result.Steps, result.Explored))
	}

	m.record(ctx, run)
	return result, solveErr
}

// Runs lists the recorded runs of a maze session.
func (m *MazeSessionManager) Runs(ctx context.Context, id uuid.UUID) ([]*domain.Run, error) {
	if m.runRepo == nil {
		return []*domain.Run{}, nil
	}
	return m.runRepo.ByMaze(ctx, id)
}

// Leaderboard returns the n sessions with the longest routes found by algorithm.
func (m *MazeSessionManager) Leaderboard(ctx context.Context, algorithm string, n int64) ([]domain.LeaderboardEntry, error) {
	if !slices.Contains(pathfinding.Names(), algorithm) {
		return nil, fmt.Errorf("%w: %q", pathfinding.ErrUnknownAlgorithm, algorithm)
	}
	if m.leaderboard == nil {
		return []domain.LeaderboardEntry{}, nil
	}
	if n <= 0 || n > m.leaderboardSize {
		n = m.leaderboardSize
	}
	return m.leaderboard.Top(ctx, leaderboardKey(algorithm), n)
}

// Close drops a maze session.
func (m *MazeSessionManager) Close(id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.logger.Info(fmt.Sprintf("closed maze %s", id))
	return nil
}

func (m *MazeSessionManager) session(id uuid.UUID) (*session, error) {
	m.RLock()
	defer m.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// generate carves the session's maze. The caller holds the session lock or owns the session.
func (m *MazeSessionManager) generate(ctx context.Context, s *session) error {
	g := generation.NewDepthFirst(generation.WithObserver(m.observer, m.animate))
	if err := g.Generate(ctx, s.maze); err != nil {
		return err
	}
	s.generation++
	return nil
}

// record stores a run and, when it found a route, ranks it on the algorithm's leaderboard.
func (m *MazeSessionManager) record(ctx context.Context, run *domain.Run) {
	if m.runRepo != nil {
		if err := m.runRepo.Save(ctx, run); err != nil {
			m.logger.Error(fmt.Sprintf("saving run %s: %s", run.ID, err))
		}
	}

	if m.leaderboard == nil || !run.Found {
		return
	}
	key := leaderboardKey(run.Algorithm)
	if err := m.leaderboard.Add(ctx, key, float64(run.Steps), run.MazeID.String()); err != nil {
		m.logger.Error(fmt.Sprintf("ranking maze %s: %s", run.MazeID, err))
		return
	}
	if err := m.leaderboard.Prune(ctx, key, m.leaderboardSize); err != nil {
		m.logger.Warning(fmt.Sprintf("pruning %s: %s", key, err))
	}
}

func leaderboardKey(algorithm string) string {
	return fmt.Sprintf(leaderboardKeyFmt, algorithm)
}

func snapshot(s *session) domain.MazeSnapshot {
	return domain.MazeSnapshot{
		ID:         s.id,
		Rows:       s.maze.Rows(),
		Cols:       s.maze.Cols(),
		Seed:       s.seed,
		Generation: s.generation,
		Entrance:   s.maze.Entrance().Position(),
		Exit:       s.maze.Exit().Position(),
		Grid:       s.maze.Lines(),
		CreatedAt:  s.createdAt,
	}
}
