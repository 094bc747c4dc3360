package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adarshm/jobportal/pkg/application"
)

// ApplicationRepository implements application.Repository backed by
// PostgreSQL (pgx).
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) (*ApplicationRepository, error) {
	r := &ApplicationRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ApplicationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS applications (
			id UUID PRIMARY KEY,
			job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
			applicant_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			match_score INT NOT NULL CHECK (match_score >= 0 AND match_score <= 100),
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL,
			UNIQUE (job_id, applicant_id)
		);
		CREATE INDEX IF NOT EXISTS idx_applications_applicant ON applications(applicant_id);
	`)
	return err
}

// Create inserts the application only if the (job_id, applicant_id) pair is
// free. The unique index plus ON CONFLICT DO NOTHING closes the
// check-then-write race: of two concurrent applies exactly one row wins.
func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	cmd, err := r.pool.Exec(ctx, `
		INSERT INTO applications (id, job_id, applicant_id, match_score, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (job_id, applicant_id) DO NOTHING
	`, a.ID, a.JobID, a.ApplicantID, a.MatchScore, string(a.Status), a.CreatedAt)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return application.ErrDuplicateApplication
	}
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, job_id, applicant_id, match_score, status, created_at
		FROM applications WHERE id = $1
	`, id)
	var a application.Application
	var status string
	var created time.Time
	if err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.MatchScore, &status, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	a.CreatedAt = created.UTC()
	return a, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE applications SET status = $2 WHERE id = $1
	`, id, string(status))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) ListByJobOwner(ctx context.Context, recruiterID uuid.UUID) ([]application.RecruiterItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.job_id, a.applicant_id, a.match_score, a.status, a.created_at,
			j.title, j.company, u.name, u.email
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = a.applicant_id
		WHERE j.posted_by = $1
		ORDER BY a.created_at DESC
	`, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []application.RecruiterItem
	for rows.Next() {
		var it application.RecruiterItem
		var status string
		var created time.Time
		if err := rows.Scan(&it.ID, &it.JobID, &it.ApplicantID, &it.MatchScore, &status, &created,
			&it.JobTitle, &it.Company, &it.ApplicantName, &it.ApplicantEmail); err != nil {
			return nil, err
		}
		it.Status = application.Status(status)
		it.CreatedAt = created.UTC()
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.CandidateItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.job_id, a.applicant_id, a.match_score, a.status, a.created_at,
			j.title, j.company, j.location
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC
	`, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []application.CandidateItem
	for rows.Next() {
		var it application.CandidateItem
		var status string
		var created time.Time
		if err := rows.Scan(&it.ID, &it.JobID, &it.ApplicantID, &it.MatchScore, &status, &created,
			&it.JobTitle, &it.Company, &it.Location); err != nil {
			return nil, err
		}
		it.Status = application.Status(status)
		it.CreatedAt = created.UTC()
		out = append(out, it)
	}
	return out, rows.Err()
}
