package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze-solver/domain"
)

// MazeSolver solves maze texts.
type MazeSolver interface {
	Solve(ctx context.Context, name, text string) (*dmn.Solution, error)
}
