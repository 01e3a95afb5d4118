package repository

import (
	"context"

	"github.com/share2solve/backend/internal/model"
)

// ProblemRepository defines the persistence interface for problem records.
type ProblemRepository interface {
	// Save inserts a new problem row. ID, status and timestamps are expected
	// to be populated by the caller before persisting.
	Save(ctx context.Context, p *model.Problem) error

	// List returns problems filtered, sorted and limited per opts.
	List(ctx context.Context, opts model.ProblemListOptions) ([]*model.Problem, error)

	// UpdateStatus sets the status of the problem with the given id and
	// returns the updated record. Returns ErrNotFound if the id is unknown.
	UpdateStatus(ctx context.Context, id, status string) (*model.Problem, error)

	// Delete removes the problem with the given id and returns its prior
	// content. Returns ErrNotFound if the id is unknown.
	Delete(ctx context.Context, id string) (*model.Problem, error)
}
