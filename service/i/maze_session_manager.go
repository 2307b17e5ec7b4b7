package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/pathfinding"
	"github.com/google/uuid"
)

// MazeSessionManager owns generated mazes and runs pathfinders against them.
type MazeSessionManager interface {
	NewSession(ctx context.Context, width, height int, seed int64) (domain.MazeSnapshot, error)
	Session(id uuid.UUID) (domain.MazeSnapshot, error)
	Regenerate(ctx context.Context, id uuid.UUID) (domain.MazeSnapshot, error)
	Solve(ctx context.Context, id uuid.UUID, algorithm string) (pathfinding.Result, error)
	Runs(ctx context.Context, id uuid.UUID) ([]*domain.Run, error)
	Leaderboard(ctx context.Context, algorithm string, n int64) ([]domain.LeaderboardEntry, error)
	Close(id uuid.UUID) error
}
