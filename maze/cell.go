package maze

import "fmt"

// Cell is the walkability value of a single grid square.
type Cell int

const (
	Open Cell = 0 // Open is a walkable floor cell.
	Wall Cell = 1 // Wall blocks movement.
)

// Markers used by the maze text format.
const (
	WallMark  = '#'
	StartMark = '^'
	ExitMark  = 'E'
	FloorMark = ' '
)

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" bson:"col"` // Column index of the cell
}

// Add returns the position shifted by the given offset.
func (p CellPosition) Add(offset CellPosition) CellPosition {
	return CellPosition{Row: p.Row + offset.Row, Col: p.Col + offset.Col}
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Offsets are the four axis-aligned unit moves, in expansion order:
// left, right, up, down.
var Offsets = []CellPosition{
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
}

// ManhattanDistance returns |a.Row-b.Row| + |a.Col-b.Col|.
func ManhattanDistance(a, b CellPosition) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Adjacent reports whether a and b differ by exactly one unit offset.
func Adjacent(a, b CellPosition) bool {
	return ManhattanDistance(a, b) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
