package maze

import (
	"errors"
	"math/rand"
)

const (
	maxMazeDimension = 50
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")

	// directions lists the lattice moves in a fixed order so a seeded generator
	// is reproducible.
	directions = []struct {
		name  string
		delta CellPosition
	}{
		{"North", CellPosition{Row: -1, Col: 0}},
		{"South", CellPosition{Row: 1, Col: 0}},
		{"East", CellPosition{Row: 0, Col: 1}},
		{"West", CellPosition{Row: 0, Col: -1}},
	}
)

// room is a lattice cell with its four walls.
type room struct {
	northWall bool
	southWall bool
	eastWall  bool
	westWall  bool
}

// move is a step between two adjacent lattice cells.
type move struct {
	from      CellPosition
	to        CellPosition
	direction string
}

// lattice is the width x height room layout carved by Wilson's algorithm.
type lattice struct {
	width  int
	height int
	rooms  [][]room
	rng    *rand.Rand
}

// Generate builds a random perfect maze of width x height rooms and rasterizes
// it into a (2*height+1) x (2*width+1) block grid. The start is the top-left
// room and the single exit opens through the bottom border below the
// bottom-right room.
func Generate(name string, width, height int, rng *rand.Rand) (*Maze, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimension {
		return nil, ErrInvalidDimensions
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	l := newLattice(width, height, rng)
	l.carve()
	return l.rasterize(name), nil
}

func newLattice(width, height int, rng *rand.Rand) *lattice {
	rooms := make([][]room, height)
	for i := range rooms {
		rooms[i] = make([]room, width)
		for j := range rooms[i] {
			rooms[i][j] = room{northWall: true, southWall: true, eastWall: true, westWall: true}
		}
	}
	return &lattice{width: width, height: height, rooms: rooms, rng: rng}
}

func (l *lattice) randomPosition() CellPosition {
	return CellPosition{Row: l.rng.Intn(l.height), Col: l.rng.Intn(l.width)}
}

// randomUnvisitedPosition picks a random room that is not yet part of the maze.
func (l *lattice) randomUnvisitedPosition(visited map[CellPosition]struct{}) CellPosition {
	for {
		pos := l.randomPosition()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors finds all in-bounds moves from pos.
func (l *lattice) neighbors(pos CellPosition) []move {
	var result []move
	for _, d := range directions {
		next := pos.Add(d.delta)
		if next.Row >= 0 && next.Row < l.height && next.Col >= 0 && next.Col < l.width {
			result = append(result, move{from: pos, to: next, direction: d.name})
		}
	}
	return result
}

// openWall removes the wall shared by the two rooms of m.
func (l *lattice) openWall(m move) {
	from := &l.rooms[m.from.Row][m.from.Col]
	to := &l.rooms[m.to.Row][m.to.Col]
	switch m.direction {
	case "North":
		from.northWall, to.southWall = false, false
	case "South":
		from.southWall, to.northWall = false, false
	case "East":
		from.eastWall, to.westWall = false, false
	case "West":
		from.westWall, to.eastWall = false, false
	}
}

// loopErasedWalk walks randomly from an unvisited room until it hits the maze,
// remembering only the last exit taken from each room, then retraces those
// exits from the start. The retraced moves form a path without loops.
func (l *lattice) loopErasedWalk(visited map[CellPosition]struct{}) []move {
	start := l.randomUnvisitedPosition(visited)
	lastExit := make(map[CellPosition]move)
	cell := start

	for {
		neighbors := l.neighbors(cell)
		next := neighbors[l.rng.Intn(len(neighbors))]
		lastExit[cell] = next
		if _, included := visited[next.to]; included {
			break
		}
		cell = next.to
	}

	var path []move
	for cell = start; ; {
		m := lastExit[cell]
		path = append(path, m)
		if _, included := visited[m.to]; included {
			return path
		}
		cell = m.to
	}
}

// carve turns the lattice into a spanning tree with Wilson's algorithm.
func (l *lattice) carve() {
	visited := make(map[CellPosition]struct{})
	visited[l.randomPosition()] = struct{}{}

	for len(visited) < l.width*l.height {
		for _, m := range l.loopErasedWalk(visited) {
			l.openWall(m)
			visited[m.from] = struct{}{}
		}
	}
}

// rasterize converts the rooms into a block grid with start and exit markers.
func (l *lattice) rasterize(name string) *Maze {
	rows, cols := 2*l.height+1, 2*l.width+1
	grid := make(Grid, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
		for c := range grid[r] {
			grid[r][c] = Wall
		}
	}

	for row := 0; row < l.height; row++ {
		for col := 0; col < l.width; col++ {
			r, c := 2*row+1, 2*col+1
			grid[r][c] = Open
			if !l.rooms[row][col].eastWall {
				grid[r][c+1] = Open
			}
			if !l.rooms[row][col].southWall {
				grid[r+1][c] = Open
			}
		}
	}

	exit := CellPosition{Row: rows - 1, Col: cols - 2}
	grid[exit.Row][exit.Col] = Open

	return &Maze{
		Name:  name,
		Grid:  grid,
		Start: CellPosition{Row: 1, Col: 1},
		Exits: []CellPosition{exit},
	}
}
