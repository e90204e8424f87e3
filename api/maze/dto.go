// Package mazeapi exposes maze listing, solving and uploads over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/vinom-maze-solver/maze"
	"github.com/beka-birhanu/vinom-maze-solver/service"
	"github.com/google/uuid"
)

// SolveRequest carries an ad-hoc maze to solve.
type SolveRequest struct {
	Name string `json:"name"`
	Maze string `json:"maze" binding:"required"`
}

// UploadRequest carries the text of a maze to store.
type UploadRequest struct {
	Maze string `json:"maze" binding:"required"`
}

// GenerateRequest asks for a random maze of width x height rooms.
type GenerateRequest struct {
	Name   string `json:"name" binding:"required"`
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
}

// SolveResponse describes the nearest-exit path of a maze.
type SolveResponse struct {
	ID       uuid.UUID               `json:"id"`
	Name     string                  `json:"name"`
	Exit     maze.CellPosition       `json:"exit"`
	Moves    int                     `json:"moves"`
	Expanded int                     `json:"expanded"`
	Path     []maze.CellPosition     `json:"path"`
	Rendered string                  `json:"rendered"`
	Budgets  []service.BudgetVerdict `json:"budgets"`
	Cached   bool                    `json:"cached"`
}

// MazeResponse returns a stored maze.
type MazeResponse struct {
	Name string `json:"name"`
	Maze string `json:"maze"`
}
