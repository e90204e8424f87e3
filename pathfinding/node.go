package pathfinding

import "github.com/beka-birhanu/vinom-maze-solver/maze"

// node is one grid cell reached during a search. Its identity is pos; its
// priority in the open set is f. The two are never compared together.
type node struct {
	pos    maze.CellPosition
	parent *node
	g      int // steps from the start
	h      int // Manhattan distance to the goal
	f      int // g + h
}

// path walks parent links back to the root and returns them start first.
func (n *node) path() Path {
	var path Path
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// openSet is a binary min-heap of nodes keyed on f. The same position may
// appear more than once.
type openSet []*node

func (s openSet) Len() int           { return len(s) }
func (s openSet) Less(i, j int) bool { return s[i].f < s[j].f }
func (s openSet) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) {
	*s = append(*s, x.(*node))
}

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*s = old[:n-1]
	return item
}
