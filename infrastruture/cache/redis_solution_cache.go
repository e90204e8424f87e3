package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze-solver/domain"
	"github.com/beka-birhanu/vinom-maze-solver/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "solver"
	lockExpiry       = 30 * time.Second
)

// RedisSolutionCache keeps solutions in Redis with a TTL and serializes
// concurrent solves of the same maze with a redsync mutex.
type RedisSolutionCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	prefix string
}

var _ i.SolutionCache = &RedisSolutionCache{}

// NewRedisSolutionCache initializes a RedisSolutionCache with the provided Redis client and TTL.
func NewRedisSolutionCache(client *redis.Client, ttlSeconds int, prefix string) (*RedisSolutionCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	c := &RedisSolutionCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		prefix: prefix,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c, nil
}

// Get returns the solution stored under key, or false when there is none.
func (c *RedisSolutionCache) Get(ctx context.Context, key string) (*dmn.Solution, bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var solution dmn.Solution
	if err := json.Unmarshal(data, &solution); err != nil {
		return nil, false, err
	}
	return &solution, true, nil
}

// Put stores solution under key for the cache TTL. A zero TTL keeps it forever.
func (c *RedisSolutionCache) Put(ctx context.Context, key string, solution *dmn.Solution) error {
	data, err := json.Marshal(solution)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key), data, c.ttl).Err()
}

// Lock acquires the solve lock for key.
func (c *RedisSolutionCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(c.key(key)+":solve_lock", redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

func (c *RedisSolutionCache) key(key string) string {
	return c.prefix + ":solution:" + key
}
