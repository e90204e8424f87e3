package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable counts open cells connected to from.
func reachable(g Grid, from CellPosition) int {
	seen := map[CellPosition]struct{}{from: {}}
	queue := []CellPosition{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, off := range Offsets {
			next := cur.Add(off)
			if _, ok := seen[next]; ok || !g.IsOpen(next) {
				continue
			}
			seen[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return len(seen)
}

func TestGenerate(t *testing.T) {
	t.Run("Produces a connected perfect maze", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			width, height := 3+int(seed%5), 2+int(seed%7)
			m, err := Generate("gen", width, height, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)

			require.Len(t, m.Grid, 2*height+1)
			for _, row := range m.Grid {
				require.Len(t, row, 2*width+1)
			}

			open := 0
			for _, row := range m.Grid {
				for _, c := range row {
					if c == Open {
						open++
					}
				}
			}
			// rooms + (rooms-1) tree passages + the exit opening
			rooms := width * height
			assert.Equal(t, rooms+rooms-1+1, open, "seed %d", seed)
			assert.Equal(t, open, reachable(m.Grid, m.Start), "seed %d", seed)
			require.Len(t, m.Exits, 1)
			assert.True(t, m.Grid.IsOpen(m.Exits[0]))
		}
	})

	t.Run("Is reproducible for a seed", func(t *testing.T) {
		a, err := Generate("a", 8, 6, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		b, err := Generate("a", 8, 6, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("Round trips through Parse", func(t *testing.T) {
		m, err := Generate("trip", 5, 4, rand.New(rand.NewSource(7)))
		require.NoError(t, err)
		parsed, err := Parse("trip", m.String())
		require.NoError(t, err)
		assert.Equal(t, m.Grid, parsed.Grid)
		assert.Equal(t, m.Start, parsed.Start)
		assert.Equal(t, m.Exits, parsed.Exits)
	})

	t.Run("Handles a single room", func(t *testing.T) {
		m, err := Generate("one", 1, 1, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, "###\n#^#\n#E#\n", m.String())
	})

	t.Run("Rejects bad dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {51, 3}, {3, 51}} {
			_, err := Generate("bad", dims[0], dims[1], nil)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
	})
}
