package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/domain"
)

// Leaderboard keeps members ranked by score under a key.
type Leaderboard interface {
	// Add sets the score of member under key.
	Add(ctx context.Context, key string, score float64, member string) error

	// Top returns up to n members with the highest scores, best first.
	Top(ctx context.Context, key string, n int64) ([]domain.LeaderboardEntry, error)

	// Prune drops everything but the best keep members.
	Prune(ctx context.Context, key string, keep int64) error
}
