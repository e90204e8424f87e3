package sortedstorage

import (
	"context"
	"os"
	"testing"

	dmn "github.com/beka-birhanu/vinom-maze-solver/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedisLeaderboard runs against a live Redis when REDIS_ADDR is set.
func TestRedisLeaderboard(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	key := "leaderboard_test:" + uuid.NewString()
	defer client.Del(ctx, key)
	board := NewRedisLeaderboard(client, key, 60)

	require.NoError(t, board.Record(ctx, "long", 40))
	require.NoError(t, board.Record(ctx, "short", 12))
	require.NoError(t, board.Record(ctx, "long", 25))
	require.NoError(t, board.Record(ctx, "short", 30))

	top, err := board.Top(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []dmn.Ranking{{Name: "short", Moves: 12}, {Name: "long", Moves: 25}}, top)
	assert.Equal(t, int64(2), board.Count(ctx))

	top, err = board.Top(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	top, err = board.Top(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}
