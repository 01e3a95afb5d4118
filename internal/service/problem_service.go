package service

import (
	"context"
	"time"

	"github.com/share2solve/backend/internal/model"
)

// ProblemService defines the business logic for problem submissions.
type ProblemService interface {
	// Submit validates and stores a new problem. The returned record carries
	// the assigned id, pending status and timestamps. Validation failures are
	// reported as *validate.Error values.
	Submit(ctx context.Context, email, problem string, timestamp *time.Time) (*model.Problem, error)

	// List returns problems according to the given options, with unknown
	// sort keys and non-positive limits normalized to their defaults.
	List(ctx context.Context, opts model.ProblemListOptions) ([]*model.Problem, error)

	// UpdateStatus changes the status of a problem and returns the updated
	// record. Returns repository.ErrNotFound for unknown ids and a
	// *validate.Error for statuses outside the enum.
	UpdateStatus(ctx context.Context, id, status string) (*model.Problem, error)

	// Delete removes a problem and returns its prior content.
	// Returns repository.ErrNotFound for unknown ids.
	Delete(ctx context.Context, id string) (*model.Problem, error)
}
