/*
Package maze provides tools for loading, generating and drawing grid mazes.

A maze is a Grid of Open and Wall cells plus one start position and any number
of exits. Mazes are exchanged as text, one line per row, where '#' is a wall,
'^' the start, 'E' an exit and every other character open floor. Rows may have
different lengths.

The package also includes a random maze generator based on Wilson's algorithm
and an ASCII renderer that overlays a path on the grid.
*/
package maze

import (
	"errors"
	"strings"
)

var (
	ErrMissingStart   = errors.New("maze has no start marker")
	ErrMultipleStarts = errors.New("maze has more than one start marker")
)

// Maze is a parsed maze ready to be searched.
type Maze struct {
	Name  string         // Name of the source the maze was read from
	Grid  Grid           // Walkability grid, start and exits are Open
	Start CellPosition   // Position of the '^' marker
	Exits []CellPosition // Positions of the 'E' markers in row-major order
}

// Parse converts maze text into a Maze.
func Parse(name, text string) (*Maze, error) {
	text = strings.TrimSuffix(text, "\n")
	m := &Maze{Name: name}
	if text == "" {
		return nil, ErrMissingStart
	}

	foundStart := false
	for row, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		cells := make([]Cell, 0, len(line))
		for col, r := range []rune(line) {
			pos := CellPosition{Row: row, Col: col}
			switch r {
			case WallMark:
				cells = append(cells, Wall)
				continue
			case StartMark:
				if foundStart {
					return nil, ErrMultipleStarts
				}
				foundStart = true
				m.Start = pos
			case ExitMark:
				m.Exits = append(m.Exits, pos)
			}
			cells = append(cells, Open)
		}
		m.Grid = append(m.Grid, cells)
	}

	if !foundStart {
		return nil, ErrMissingStart
	}
	return m, nil
}

// String encodes the maze back into the text format. Open cells other than the
// start and exits are written as spaces.
func (m *Maze) String() string {
	exits := make(map[CellPosition]struct{}, len(m.Exits))
	for _, e := range m.Exits {
		exits[e] = struct{}{}
	}

	var b strings.Builder
	for row, cells := range m.Grid {
		for col, cell := range cells {
			pos := CellPosition{Row: row, Col: col}
			_, isExit := exits[pos]
			switch {
			case pos == m.Start:
				b.WriteRune(StartMark)
			case isExit:
				b.WriteRune(ExitMark)
			case cell == Wall:
				b.WriteRune(WallMark)
			default:
				b.WriteRune(FloorMark)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
