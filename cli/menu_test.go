package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze-solver/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze-solver/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenu(t *testing.T, mazes map[string]string, input string) (*Menu, *bytes.Buffer) {
	t.Helper()

	source := repo.NewDirSource(t.TempDir())
	for name, text := range mazes {
		require.NoError(t, source.Save(context.Background(), name, text))
	}
	solver, err := service.NewSolver(nil)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	menu, err := NewMenu(Config{
		Source:  source,
		Solver:  solver,
		Budgets: []int{2, 3, 10},
		In:      strings.NewReader(input),
		Out:     out,
	})
	require.NoError(t, err)
	return menu, out
}

func TestSelect(t *testing.T) {
	mazes := map[string]string{"alpha": "#^E#", "beta": "#^ E#"}

	t.Run("Returns chosen maze", func(t *testing.T) {
		menu, out := newMenu(t, mazes, "2\n")
		name, err := menu.Select(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "beta", name)
		assert.Contains(t, out.String(), "  1) alpha\n  2) beta\n")
	})

	t.Run("Asks again on invalid input", func(t *testing.T) {
		menu, out := newMenu(t, mazes, "zero\n7\n 1 \n")
		name, err := menu.Select(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "alpha", name)
		assert.Equal(t, 2, strings.Count(out.String(), "Please enter a number between 1 and 2."))
	})

	t.Run("Aborts at end of input", func(t *testing.T) {
		menu, _ := newMenu(t, mazes, "9\n")
		_, err := menu.Select(context.Background())
		assert.ErrorIs(t, err, ErrAborted)
	})

	t.Run("Empty source", func(t *testing.T) {
		menu, _ := newMenu(t, nil, "1\n")
		_, err := menu.Select(context.Background())
		assert.ErrorIs(t, err, ErrNoMazes)
	})
}

func TestRun(t *testing.T) {
	t.Run("Prints report", func(t *testing.T) {
		menu, out := newMenu(t, map[string]string{"corridor": "#####\n#^  E\n#####"}, "1\n")
		require.NoError(t, menu.Run(context.Background()))

		report := out.String()
		assert.Contains(t, report, "█····\n")
		assert.Contains(t, report, "2 moves is not enough to get out from the maze. You need 3 moves to get out.\n")
		assert.Contains(t, report, "Congratulations! The maze was escaped in 3 moves.\n")
		assert.Equal(t, 1, strings.Count(report, "Congratulations!"))
	})

	t.Run("Prints unreachable message", func(t *testing.T) {
		menu, out := newMenu(t, map[string]string{"walled": "#####\n#^#E#\n#####"}, "1\n")
		require.NoError(t, menu.Run(context.Background()))
		assert.Contains(t, out.String(), "The exit is unreachable.\n")
	})

	t.Run("Prints missing exit message", func(t *testing.T) {
		menu, out := newMenu(t, map[string]string{"closed": "###\n#^#\n###"}, "1\n")
		require.NoError(t, menu.Run(context.Background()))
		assert.Contains(t, out.String(), "Your maze is missing the exit.\n")
	})
}
