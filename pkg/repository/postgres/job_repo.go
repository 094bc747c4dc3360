package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adarshm/jobportal/pkg/job"
)

// JobRepository implements job.Repository backed by PostgreSQL (pgx).
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) (*JobRepository, error) {
	r := &JobRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			skills TEXT[] NOT NULL DEFAULT '{}',
			location TEXT NOT NULL DEFAULT '',
			salary TEXT NOT NULL DEFAULT '',
			posted_by UUID NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_jobs_posted_by ON jobs(posted_by);
	`)
	return err
}

const jobColumns = `id, title, company, description, skills, location, salary, posted_by, created_at`

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	var created time.Time
	if err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Description, &j.Skills,
		&j.Location, &j.Salary, &j.PostedBy, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	j.CreatedAt = created.UTC()
	return j, nil
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, j.ID, j.Title, j.Company, j.Description, j.Skills, j.Location, j.Salary, j.PostedBy, j.CreatedAt)
	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

// List returns jobs newest first. limit <= 0 means no limit (used by the
// recommendation query, which filters in memory).
func (r *JobRepository) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *JobRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]job.Job, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+` FROM jobs WHERE posted_by = $1 ORDER BY created_at DESC
	`, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}
