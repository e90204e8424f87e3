package maze

// Grid is a possibly ragged array of cells indexed as grid[row][col].
type Grid [][]Cell

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// InBounds reports whether p addresses an existing cell, using the length of
// p's own row.
func (g Grid) InBounds(p CellPosition) bool {
	return p.Row >= 0 && p.Row < len(g) && p.Col >= 0 && p.Col < len(g[p.Row])
}

// At returns the cell at p. Positions outside the grid read as Wall.
func (g Grid) At(p CellPosition) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g[p.Row][p.Col]
}

// IsOpen reports whether p is an in-bounds walkable cell.
func (g Grid) IsOpen(p CellPosition) bool {
	return g.At(p) == Open
}

// LastRowWidth returns the length of the final row, or 0 for an empty grid.
func (g Grid) LastRowWidth() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[len(g)-1])
}
