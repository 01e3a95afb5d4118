package handler

import (
	"context"

	"github.com/share2solve/backend/internal/model"
	"github.com/share2solve/backend/internal/repository"
	"github.com/share2solve/backend/internal/review"
)

// inmemProblemRepo backs lifecycle tests with a real (if tiny) store so the
// full service + handler stack runs without PostgreSQL. Filtering and sorting
// reuse the review pipeline, which mirrors the SQL ordering.
type inmemProblemRepo struct {
	problems []*model.Problem
}

func newInmemProblemRepo() *inmemProblemRepo {
	return &inmemProblemRepo{}
}

var _ repository.ProblemRepository = (*inmemProblemRepo)(nil)

func (r *inmemProblemRepo) Save(ctx context.Context, p *model.Problem) error {
	cp := *p
	r.problems = append(r.problems, &cp)
	return nil
}

func (r *inmemProblemRepo) List(ctx context.Context, opts model.ProblemListOptions) ([]*model.Problem, error) {
	filtered := review.Filter(r.problems, opts.Search)
	if model.ValidStatus(opts.Status) {
		var byStatus []*model.Problem
		for _, p := range filtered {
			if p.Status == opts.Status {
				byStatus = append(byStatus, p)
			}
		}
		filtered = byStatus
	}
	sorted := review.Sort(filtered, opts.SortBy)
	if opts.Limit > 0 && len(sorted) > opts.Limit {
		sorted = sorted[:opts.Limit]
	}
	return sorted, nil
}

func (r *inmemProblemRepo) UpdateStatus(ctx context.Context, id, status string) (*model.Problem, error) {
	for _, p := range r.problems {
		if p.ID == id {
			p.Status = status
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *inmemProblemRepo) Delete(ctx context.Context, id string) (*model.Problem, error) {
	for i, p := range r.problems {
		if p.ID == id {
			r.problems = append(r.problems[:i], r.problems[i+1:]...)
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}
