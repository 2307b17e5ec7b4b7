package sortedstorage

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisLeaderboard keeps ranked members in Redis sorted sets with TTL support.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided Redis client and TTL.
func NewRedisLeaderboard(client *redis.Client, ttlSeconds int) (i.Leaderboard, error) {
	board := &RedisLeaderboard{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Add sets the score of a member. The key's TTL is set on its first write only.
func (rl *RedisLeaderboard) Add(ctx context.Context, key string, score float64, member string) error {
	_, err := rl.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Result()
	if err != nil {
		return err
	}

	if rl.ttl <= 0 {
		return nil
	}

	// Set expiration only if it's not already set
	ttl, err := rl.client.TTL(ctx, key).Result()
	if err != nil {
		return err
	}
	if ttl == -1 {
		return rl.client.Expire(ctx, key, rl.ttl).Err()
	}
	return nil
}

// Top retrieves up to n members with the highest scores.
func (rl *RedisLeaderboard) Top(ctx context.Context, key string, n int64) ([]domain.LeaderboardEntry, error) {
	scores, err := rl.client.ZRevRangeWithScores(ctx, key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(scores))
	for _, z := range scores {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, domain.LeaderboardEntry{MazeID: member, Score: z.Score})
	}
	return entries, nil
}

// Prune removes the lowest-ranked members so that at most keep remain.
// The set is locked so concurrent instances do not trim it twice.
func (rl *RedisLeaderboard) Prune(ctx context.Context, key string, keep int64) error {
	mutex := rl.locker.NewMutex(key + ":prune_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	count, err := rl.client.ZCard(ctx, key).Result()
	if err != nil {
		return err
	}
	if count <= keep {
		return nil
	}
	return rl.client.ZRemRangeByRank(ctx, key, 0, count-keep-1).Err()
}
