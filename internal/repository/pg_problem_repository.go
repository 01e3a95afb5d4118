package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/share2solve/backend/internal/model"
)

// PgProblemRepository is the PostgreSQL implementation of ProblemRepository.
type PgProblemRepository struct {
	pool *pgxpool.Pool
}

// NewPgProblemRepository creates a PgProblemRepository backed by the given pool.
func NewPgProblemRepository(pool *pgxpool.Pool) *PgProblemRepository {
	return &PgProblemRepository{pool: pool}
}

// Ensure PgProblemRepository implements ProblemRepository at compile time.
var _ ProblemRepository = (*PgProblemRepository)(nil)

const problemColumns = `id, email, problem, status, timestamp, created_at, updated_at`

// Save inserts a new problems row.
func (r *PgProblemRepository) Save(ctx context.Context, p *model.Problem) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO problems (id, email, problem, status, timestamp, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Email, p.Problem, p.Status, p.Timestamp, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// buildListQuery constructs the SELECT for List from the given options.
// Search matches email OR problem case-insensitively; a status filter is only
// applied for valid enum values; sort falls back to newest-first.
func buildListQuery(opts model.ProblemListOptions) (string, []any) {
	var conditions []string
	var args []any

	if search := strings.TrimSpace(opts.Search); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions, "(email ILIKE $"+n+" OR problem ILIKE $"+n+")")
	}

	if model.ValidStatus(opts.Status) {
		args = append(args, opts.Status)
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var order string
	switch opts.SortBy {
	case model.SortOldest:
		order = "timestamp ASC"
	case model.SortEmail:
		order = "email ASC"
	case model.SortStatus:
		// 'pending' sorts before 'resolved'; newest first within each group
		order = "status ASC, timestamp DESC"
	default:
		order = "timestamp DESC"
	}

	args = append(args, opts.Limit)
	query := `SELECT ` + problemColumns + ` FROM problems` + where +
		` ORDER BY ` + order + ` LIMIT $` + strconv.Itoa(len(args))
	return query, args
}

// escapeLike escapes LIKE wildcards so search terms match literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// List returns problems filtered by search/status, ordered per SortBy and
// capped at Limit.
func (r *PgProblemRepository) List(ctx context.Context, opts model.ProblemListOptions) ([]*model.Problem, error) {
	query, args := buildListQuery(opts)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var problems []*model.Problem
	for rows.Next() {
		var p model.Problem
		if err := rows.Scan(&p.ID, &p.Email, &p.Problem, &p.Status, &p.Timestamp, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		problems = append(problems, &p)
	}
	return problems, rows.Err()
}

// UpdateStatus sets the status and returns the updated row.
func (r *PgProblemRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Problem, error) {
	var p model.Problem
	err := r.pool.QueryRow(ctx,
		`UPDATE problems SET status = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+problemColumns,
		status, id,
	).Scan(&p.ID, &p.Email, &p.Problem, &p.Status, &p.Timestamp, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes the row and returns its prior content so the caller can
// offer undo-by-reinsertion.
func (r *PgProblemRepository) Delete(ctx context.Context, id string) (*model.Problem, error) {
	var p model.Problem
	err := r.pool.QueryRow(
		ctx,
		`DELETE FROM problems WHERE id = $1 RETURNING `+problemColumns,
		id,
	).Scan(&p.ID, &p.Email, &p.Problem, &p.Status, &p.Timestamp, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
