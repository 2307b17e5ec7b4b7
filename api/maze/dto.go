// Package mazeapi provides structures and utilities for maze session requests and responses.
package mazeapi

import "github.com/beka-birhanu/vinom-maze/maze"

// CreateMazeRequest represents a request to generate a new maze.
type CreateMazeRequest struct {
	Width  int   `json:"width" binding:"required,min=1"`
	Height int   `json:"height" binding:"required,min=1"`
	Seed   int64 `json:"seed"` // 0 picks a random seed
}

// SolveRequest represents a request to run a pathfinder against a maze.
type SolveRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
}

// SolveResponse represents the route found by a pathfinder.
type SolveResponse struct {
	Algorithm string          `json:"algorithm"`
	Path      []maze.Position `json:"path"`
	Steps     int             `json:"steps"`
	Explored  int             `json:"explored"`
}
