package i

import "context"

// MazeSource lists and stores named maze texts.
type MazeSource interface {
	// List returns the names of all stored mazes in display order.
	List(ctx context.Context) ([]string, error)

	// Load returns the text of the named maze.
	// Returns an error wrapping domain.ErrMazeNotFound if there is no such maze.
	Load(ctx context.Context, name string) (string, error)

	// Save inserts or replaces the named maze.
	Save(ctx context.Context, name, text string) error
}
