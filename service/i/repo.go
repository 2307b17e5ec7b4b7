package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// RunRepo defines the interface for solve run persistence.
type RunRepo interface {
	// Save inserts a run record.
	Save(ctx context.Context, run *domain.Run) error

	// ByMaze retrieves every run recorded for a maze session, oldest first.
	// Returns an empty slice when the session has no runs.
	ByMaze(ctx context.Context, mazeID uuid.UUID) ([]*domain.Run, error)
}
