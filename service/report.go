package service

import (
	"errors"
	"fmt"
	"io"

	dmn "github.com/beka-birhanu/vinom-maze-solver/domain"
	"github.com/beka-birhanu/vinom-maze-solver/maze"
)

// WriteReport draws the solved maze and one line per budget verdict.
func WriteReport(w io.Writer, m *maze.Maze, solution *dmn.Solution, verdicts []BudgetVerdict) error {
	if _, err := fmt.Fprintf(w, "\n%s", maze.Render(m.Grid, solution.Path)); err != nil {
		return err
	}

	for _, v := range verdicts {
		var err error
		if v.Pass {
			_, err = fmt.Fprintf(w, "Congratulations! The maze was escaped in %d moves.\n", v.Moves)
		} else {
			_, err = fmt.Fprintf(w, "%d moves is not enough to get out from the maze. You need %d moves to get out.\n", v.Limit, v.Moves)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Describe turns a solve error into the message shown to users.
func Describe(err error) string {
	switch {
	case errors.Is(err, ErrUnreachable):
		return "The exit is unreachable."
	case errors.Is(err, ErrNoExit):
		return "Your maze is missing the exit."
	case errors.Is(err, ErrBadFormat):
		return fmt.Sprintf("The maze is in a bad format: %s.", err)
	case errors.Is(err, dmn.ErrMazeNotFound):
		return "The maze could not be found."
	default:
		return fmt.Sprintf("Solving the maze failed: %s.", err)
	}
}
