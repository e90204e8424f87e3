// Package domain holds the records shared between services, storage and the API.
package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-maze-solver/maze"
	"github.com/google/uuid"
)

// Solution is the nearest-exit path found for a maze.
type Solution struct {
	ID       uuid.UUID           `json:"id"`
	Name     string              `json:"name"`
	Exit     maze.CellPosition   `json:"exit"`
	Path     []maze.CellPosition `json:"path"`
	Moves    int                 `json:"moves"`
	Expanded int                 `json:"expanded"` // nodes expanded over all exit searches
	Cached   bool                `json:"cached"`
}

// Ranking is a maze's best known move count.
type Ranking struct {
	Name  string `json:"name"`
	Moves int    `json:"moves"`
}

// StoredMaze is a named maze text kept by a maze source.
type StoredMaze struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Text      string    `bson:"text"`
	UpdatedAt time.Time `bson:"updatedAt"`
}
