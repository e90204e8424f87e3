package domain

import "errors"

var (
	ErrMazeNotFound    = errors.New("maze not found")
	ErrInvalidMazeName = errors.New("invalid maze name")
)
