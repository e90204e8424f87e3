package maze

import "strings"

// Glyphs used when drawing a solved maze.
const (
	WallGlyph = '█'
	OpenGlyph = ' '
	PathGlyph = '·'
)

// Render draws the grid row by row with the path overlaid. Path positions that
// fall outside the grid are ignored.
func Render(g Grid, path []CellPosition) string {
	onPath := make(map[CellPosition]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var b strings.Builder
	for row, cells := range g {
		for col, cell := range cells {
			if _, ok := onPath[CellPosition{Row: row, Col: col}]; ok {
				b.WriteRune(PathGlyph)
				continue
			}
			if cell == Wall {
				b.WriteRune(WallGlyph)
			} else {
				b.WriteRune(OpenGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
