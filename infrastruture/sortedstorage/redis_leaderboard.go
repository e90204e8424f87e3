package sortedstorage

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze-solver/domain"
	"github.com/beka-birhanu/vinom-maze-solver/service/i"
	"github.com/redis/go-redis/v9"
)

const defaultLeaderboardKey = "solver:leaderboard"

// RedisLeaderboard keeps the fewest moves per maze in a Redis sorted set.
type RedisLeaderboard struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

var _ i.Leaderboard = &RedisLeaderboard{}

// NewRedisLeaderboard initializes a RedisLeaderboard stored under key with the given TTL.
func NewRedisLeaderboard(client *redis.Client, key string, ttlSeconds int) *RedisLeaderboard {
	if key == "" {
		key = defaultLeaderboardKey
	}
	return &RedisLeaderboard{
		client: client,
		key:    key,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Record stores moves for name unless a lower count is already recorded.
func (l *RedisLeaderboard) Record(ctx context.Context, name string, moves int) error {
	err := l.client.ZAddArgs(ctx, l.key, redis.ZAddArgs{
		LT:      true,
		Members: []redis.Z{{Score: float64(moves), Member: name}},
	}).Err()
	if err != nil {
		return err
	}

	// Set expiration only if it's not already set
	if l.ttl > 0 {
		ttl, err := l.client.TTL(ctx, l.key).Result()
		if err == nil && ttl == -1 {
			_ = l.client.Expire(ctx, l.key, l.ttl).Err()
		}
	}

	return nil
}

// Top returns up to n rankings with the fewest moves first.
func (l *RedisLeaderboard) Top(ctx context.Context, n int64) ([]dmn.Ranking, error) {
	if n <= 0 {
		return []dmn.Ranking{}, nil
	}

	entries, err := l.client.ZRangeWithScores(ctx, l.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	rankings := make([]dmn.Ranking, 0, len(entries))
	for _, e := range entries {
		name, _ := e.Member.(string)
		rankings = append(rankings, dmn.Ranking{Name: name, Moves: int(e.Score)})
	}
	return rankings, nil
}

// Count returns the number of ranked mazes.
func (l *RedisLeaderboard) Count(ctx context.Context) int64 {
	return l.client.ZCard(ctx, l.key).Val()
}
