// Package cli runs the interactive maze selection menu.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vinom-maze-solver/maze"
	"github.com/beka-birhanu/vinom-maze-solver/service"
	"github.com/beka-birhanu/vinom-maze-solver/service/i"
)

var (
	ErrNoMazes = errors.New("no mazes available")
	ErrAborted = errors.New("selection aborted")
)

// Menu lists the mazes of a source and solves the one the user picks.
type Menu struct {
	source  i.MazeSource
	solver  i.MazeSolver
	budgets []int
	in      *bufio.Scanner
	out     io.Writer
}

// Config holds the dependencies of a Menu.
type Config struct {
	Source  i.MazeSource
	Solver  i.MazeSolver
	Budgets []int
	In      io.Reader
	Out     io.Writer
}

// NewMenu creates a Menu reading choices from In and writing to Out.
func NewMenu(c Config) (*Menu, error) {
	if c.Source == nil || c.Solver == nil {
		return nil, errors.New("menu requires a maze source and a solver")
	}
	if c.In == nil || c.Out == nil {
		return nil, errors.New("menu requires an input and an output")
	}
	return &Menu{
		source:  c.Source,
		solver:  c.Solver,
		budgets: c.Budgets,
		in:      bufio.NewScanner(c.In),
		out:     c.Out,
	}, nil
}

// Select prints the available mazes and asks until a valid number is entered.
func (m *Menu) Select(ctx context.Context) (string, error) {
	names, err := m.source.List(ctx)
	if err != nil {
		return "", fmt.Errorf("listing mazes: %w", err)
	}
	if len(names) == 0 {
		return "", ErrNoMazes
	}

	fmt.Fprintln(m.out, "Available mazes:")
	for idx, name := range names {
		fmt.Fprintf(m.out, "  %d) %s\n", idx+1, name)
	}

	for {
		fmt.Fprintf(m.out, "Select a maze [1-%d]: ", len(names))
		if !m.in.Scan() {
			if err := m.in.Err(); err != nil {
				return "", err
			}
			return "", ErrAborted
		}

		choice, err := strconv.Atoi(strings.TrimSpace(m.in.Text()))
		if err == nil && choice >= 1 && choice <= len(names) {
			return names[choice-1], nil
		}
		fmt.Fprintf(m.out, "Please enter a number between 1 and %d.\n", len(names))
	}
}

// Run selects a maze, solves it and prints the report. Solve failures are
// printed as messages; only menu and I/O failures are returned.
func (m *Menu) Run(ctx context.Context) error {
	name, err := m.Select(ctx)
	if err != nil {
		return err
	}

	text, err := m.source.Load(ctx, name)
	if err != nil {
		fmt.Fprintln(m.out, service.Describe(err))
		return nil
	}

	solution, err := m.solver.Solve(ctx, name, text)
	if err != nil {
		fmt.Fprintln(m.out, service.Describe(err))
		return nil
	}

	parsed, err := maze.Parse(name, text)
	if err != nil {
		fmt.Fprintln(m.out, service.Describe(err))
		return nil
	}
	return service.WriteReport(m.out, parsed, solution, service.EvaluateBudgets(solution.Moves, m.budgets))
}
