package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze-solver/domain"
)

// Leaderboard ranks mazes by the fewest moves needed to leave them.
type Leaderboard interface {
	// Record keeps moves for name if it beats the stored value.
	Record(ctx context.Context, name string, moves int) error

	// Top returns up to n rankings, fewest moves first.
	Top(ctx context.Context, n int64) ([]dmn.Ranking, error)
}
