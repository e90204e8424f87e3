package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("Reads grid start and exits", func(t *testing.T) {
		m, err := Parse("small", "####\n#^ #\n# E#\n####\n")
		require.NoError(t, err)

		assert.Equal(t, "small", m.Name)
		assert.Equal(t, CellPosition{Row: 1, Col: 1}, m.Start)
		assert.Equal(t, []CellPosition{{Row: 2, Col: 2}}, m.Exits)
		assert.Equal(t, Grid{
			{Wall, Wall, Wall, Wall},
			{Wall, Open, Open, Wall},
			{Wall, Open, Open, Wall},
			{Wall, Wall, Wall, Wall},
		}, m.Grid)
	})

	t.Run("Keeps exits in row-major order", func(t *testing.T) {
		m, err := Parse("two", "#E#\n#^ E\n#E")
		require.NoError(t, err)
		assert.Equal(t, []CellPosition{{Row: 0, Col: 1}, {Row: 1, Col: 3}, {Row: 2, Col: 1}}, m.Exits)
	})

	t.Run("Accepts ragged rows and CRLF", func(t *testing.T) {
		m, err := Parse("ragged", "#####\r\n#^\r\n# E ##\r\n")
		require.NoError(t, err)
		require.Len(t, m.Grid, 3)
		assert.Len(t, m.Grid[0], 5)
		assert.Len(t, m.Grid[1], 2)
		assert.Len(t, m.Grid[2], 6)
	})

	t.Run("Treats unknown characters as floor", func(t *testing.T) {
		m, err := Parse("dots", "^.x")
		require.NoError(t, err)
		assert.Equal(t, Grid{{Open, Open, Open}}, m.Grid)
	})

	t.Run("Allows a maze without exits", func(t *testing.T) {
		m, err := Parse("closed", "###\n#^#\n###")
		require.NoError(t, err)
		assert.Empty(t, m.Exits)
	})

	t.Run("Rejects missing start", func(t *testing.T) {
		_, err := Parse("nostart", "###\n#E#\n###")
		assert.ErrorIs(t, err, ErrMissingStart)
	})

	t.Run("Rejects empty text", func(t *testing.T) {
		_, err := Parse("empty", "")
		assert.ErrorIs(t, err, ErrMissingStart)
	})

	t.Run("Rejects two starts", func(t *testing.T) {
		_, err := Parse("twostarts", "#^^E#")
		assert.ErrorIs(t, err, ErrMultipleStarts)
	})
}

func TestMazeString(t *testing.T) {
	text := "#####\n#^ E#\n# ###\n#E\n"
	m, err := Parse("roundtrip", text)
	require.NoError(t, err)
	assert.Equal(t, text, m.String())

	again, err := Parse("roundtrip", m.String())
	require.NoError(t, err)
	assert.Equal(t, m, again)
}

func TestGrid(t *testing.T) {
	g := Grid{
		{Wall, Wall, Wall},
		{Open},
		{Wall, Open},
	}

	assert.True(t, g.IsOpen(CellPosition{Row: 1, Col: 0}))
	assert.False(t, g.IsOpen(CellPosition{Row: 1, Col: 1}), "beyond its own row reads as wall")
	assert.False(t, g.IsOpen(CellPosition{Row: -1, Col: 0}))
	assert.False(t, g.IsOpen(CellPosition{Row: 3, Col: 0}))
	assert.Equal(t, Wall, g.At(CellPosition{Row: 0, Col: 5}))
	assert.Equal(t, 2, g.LastRowWidth())
	assert.Equal(t, 0, Grid{}.LastRowWidth())
}

func TestManhattanDistance(t *testing.T) {
	assert.Equal(t, 0, ManhattanDistance(CellPosition{Row: 2, Col: 3}, CellPosition{Row: 2, Col: 3}))
	assert.Equal(t, 7, ManhattanDistance(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 3, Col: 4}))
	assert.Equal(t, 7, ManhattanDistance(CellPosition{Row: 3, Col: 4}, CellPosition{Row: 0, Col: 0}))
	assert.True(t, Adjacent(CellPosition{Row: 1, Col: 1}, CellPosition{Row: 1, Col: 2}))
	assert.False(t, Adjacent(CellPosition{Row: 1, Col: 1}, CellPosition{Row: 2, Col: 2}))
}
