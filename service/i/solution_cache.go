package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze-solver/domain"
)

// SolutionCache remembers solutions by maze fingerprint.
type SolutionCache interface {
	// Get returns the cached solution and true, or false on a miss.
	Get(ctx context.Context, key string) (*dmn.Solution, bool, error)

	// Put stores a solution under key.
	Put(ctx context.Context, key string, solution *dmn.Solution) error

	// Lock serializes solves of the same key. The returned func releases it.
	Lock(ctx context.Context, key string) (func(), error)
}
