// Package pathfinding finds shortest walkable paths on maze grids with A*.
//
// Movement is restricted to the four axis-aligned neighbors at a uniform cost
// of one step, and the Manhattan distance is used as heuristic, so the first
// time the goal leaves the open set its path is a shortest one.
package pathfinding

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze-solver/maze"
	"github.com/zyedidia/generic/mapset"
)

var (
	ErrNotFound          = errors.New("no path found")
	ErrInvalidCoordinate = errors.New("coordinate is outside the grid or not walkable")
)

// Path is an ordered sequence of positions from start to goal, both included.
type Path []maze.CellPosition

// Moves returns the number of steps along the path.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Result contains the outcome of a search.
type Result struct {
	Path     Path
	Expanded int // nodes taken off the open set and expanded
}

// Search runs A* on grid from start to end.
//
// Both endpoints must be open cells inside their own rows, otherwise
// ErrInvalidCoordinate is returned. When end cannot be reached the error is
// ErrNotFound.
//
// Neighbor columns are bounded by the width of the grid's last row rather than
// by the neighbor's own row. On ragged grids this makes cells past the last
// row's width unreachable; cells inside that width but past a shorter row's
// end read as walls.
func Search(grid maze.Grid, start, end maze.CellPosition) (*Result, error) {
	if !grid.IsOpen(start) {
		return nil, fmt.Errorf("%w: start %s", ErrInvalidCoordinate, start)
	}
	if !grid.IsOpen(end) {
		return nil, fmt.Errorf("%w: end %s", ErrInvalidCoordinate, end)
	}

	rows, cols := grid.Rows(), grid.LastRowWidth()

	open := &openSet{}
	heap.Push(open, &node{pos: start})
	// lowest g pushed for each position that is not closed yet
	bestOpen := map[maze.CellPosition]int{start: 0}
	closed := mapset.New[maze.CellPosition]()
	expanded := 0

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)
		if closed.Has(current.pos) {
			// stale duplicate of an expanded position
			continue
		}
		closed.Put(current.pos)
		delete(bestOpen, current.pos)
		expanded++

		if current.pos == end {
			return &Result{Path: current.path(), Expanded: expanded}, nil
		}

		for _, offset := range maze.Offsets {
			next := current.pos.Add(offset)
			if next.Row < 0 || next.Row >= rows || next.Col < 0 || next.Col >= cols {
				continue
			}
			if !grid.IsOpen(next) {
				continue
			}
			if closed.Has(next) {
				continue
			}

			g := current.g + 1
			if best, ok := bestOpen[next]; ok && best <= g {
				continue
			}

			h := maze.ManhattanDistance(next, end)
			heap.Push(open, &node{pos: next, parent: current, g: g, h: h, f: g + h})
			bestOpen[next] = g
		}
	}

	return nil, ErrNotFound
}
