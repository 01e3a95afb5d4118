package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/share2solve/backend/internal/model"
	"github.com/share2solve/backend/internal/repository"
	"github.com/share2solve/backend/internal/validate"
)

// DefaultListLimit caps list queries when the caller supplies no usable limit.
const DefaultListLimit = 1000

// problemServiceImpl is the production implementation of ProblemService.
type problemServiceImpl struct {
	repo repository.ProblemRepository
}

// NewProblemService creates a ProblemService backed by the given repository.
func NewProblemService(repo repository.ProblemRepository) ProblemService {
	return &problemServiceImpl{repo: repo}
}

// Submit sanitizes and validates the submission, assigns an id and pending
// status, and persists the record. A nil timestamp defaults to now.
func (s *problemServiceImpl) Submit(ctx context.Context, email, problem string, timestamp *time.Time) (*model.Problem, error) {
	if email == "" || problem == "" {
		return nil, validate.ErrFieldsRequired
	}
	if !validate.Email(email) {
		return nil, validate.ErrInvalidEmail
	}

	email = validate.NormalizeEmail(email)
	problem = validate.Sanitize(problem)
	if err := validate.Problem(problem); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ts := now
	if timestamp != nil && !timestamp.IsZero() {
		ts = timestamp.UTC()
	}

	p := &model.Problem{
		ID:        uuid.NewString(),
		Email:     email,
		Problem:   problem,
		Status:    model.StatusPending,
		Timestamp: ts,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List normalizes the options and queries the repository. Invalid status
// filters are dropped, unknown sort keys fall back to newest-first, and
// non-positive limits become DefaultListLimit.
func (s *problemServiceImpl) List(ctx context.Context, opts model.ProblemListOptions) ([]*model.Problem, error) {
	if !model.ValidStatus(opts.Status) {
		opts.Status = ""
	}
	switch opts.SortBy {
	case model.SortNewest, model.SortOldest, model.SortEmail, model.SortStatus:
	default:
		opts.SortBy = model.SortNewest
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultListLimit
	}
	return s.repo.List(ctx, opts)
}

// UpdateStatus validates the status value and persists the change.
func (s *problemServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.Problem, error) {
	if err := validate.Status(status); err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Delete removes the problem and returns its prior content.
func (s *problemServiceImpl) Delete(ctx context.Context, id string) (*model.Problem, error) {
	return s.repo.Delete(ctx, id)
}
