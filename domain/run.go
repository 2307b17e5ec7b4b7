package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// Run records one pathfinder run against a maze session.
type Run struct {
	ID         uuid.UUID       `json:"id"`
	MazeID     uuid.UUID       `json:"maze_id"`
	Algorithm  string          `json:"algorithm"`
	Rows       int             `json:"rows"`
	Cols       int             `json:"cols"`
	Seed       int64           `json:"seed"`       // Seed the maze was built from
	Generation int             `json:"generation"` // How many times the maze had been carved
	Found      bool            `json:"found"`
	Steps      int             `json:"steps"`
	Explored   int             `json:"explored"`
	Path       []maze.Position `json:"path,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// LeaderboardEntry is a maze session ranked by the length of its solved route.
type LeaderboardEntry struct {
	MazeID string  `json:"maze_id"`
	Score  float64 `json:"score"`
}

// MazeSnapshot is a read-only view of a maze session.
type MazeSnapshot struct {
	ID         uuid.UUID     `json:"id"`
	Rows       int           `json:"rows"`
	Cols       int           `json:"cols"`
	Seed       int64         `json:"seed"`
	Generation int           `json:"generation"`
	Entrance   maze.Position `json:"entrance"`
	Exit       maze.Position `json:"exit"`
	Grid       []string      `json:"grid"`
	CreatedAt  time.Time     `json:"created_at"`
}
