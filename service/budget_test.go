package service

import (
	"bytes"
	"fmt"
	"testing"

	dmn "github.com/beka-birhanu/vinom-maze-solver/domain"
	"github.com/beka-birhanu/vinom-maze-solver/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBudgets(t *testing.T) {
	t.Run("Stops at the first passing budget", func(t *testing.T) {
		verdicts := EvaluateBudgets(10, []int{5, 15, 20})
		assert.Equal(t, []BudgetVerdict{
			{Limit: 5, Moves: 10, Pass: false},
			{Limit: 15, Moves: 10, Pass: true},
		}, verdicts)
	})

	t.Run("Passes on an exact budget", func(t *testing.T) {
		verdicts := EvaluateBudgets(10, []int{10, 20})
		assert.Equal(t, []BudgetVerdict{{Limit: 10, Moves: 10, Pass: true}}, verdicts)
	})

	t.Run("Fails every budget that is too small", func(t *testing.T) {
		verdicts := EvaluateBudgets(30, []int{5, 15, 20})
		assert.Len(t, verdicts, 3)
		for _, v := range verdicts {
			assert.False(t, v.Pass)
		}
	})

	t.Run("Returns nothing without budgets", func(t *testing.T) {
		assert.Empty(t, EvaluateBudgets(3, nil))
	})
}

func TestWriteReport(t *testing.T) {
	m, err := maze.Parse("small", "####\n#^ #\n# E#\n####")
	require.NoError(t, err)
	sol := &dmn.Solution{
		Path:  []maze.CellPosition{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
		Moves: 2,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, m, sol, EvaluateBudgets(2, []int{1, 5})))

	want := "\n" +
		"████\n" +
		"█··█\n" +
		"█ ·█\n" +
		"████\n" +
		"1 moves is not enough to get out from the maze. You need 2 moves to get out.\n" +
		"Congratulations! The maze was escaped in 2 moves.\n"
	assert.Equal(t, want, buf.String())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "The exit is unreachable.", Describe(ErrUnreachable))
	assert.Equal(t, "Your maze is missing the exit.", Describe(fmt.Errorf("wrapped: %w", ErrNoExit)))
	assert.Contains(t, Describe(fmt.Errorf("%w: %w", ErrBadFormat, maze.ErrMissingStart)), "bad format")
	assert.Equal(t, "The maze could not be found.", Describe(dmn.ErrMazeNotFound))
}
