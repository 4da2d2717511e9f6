package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/careerlane/job-board-be/internal/api/domain"
	"github.com/careerlane/job-board-be/internal/api/model"
	"github.com/careerlane/job-board-be/shared/postgresql"
	"github.com/jmoiron/sqlx"
)

// jobColumns selects the deadline as text so the stored YYYY-MM-DD form
// round-trips unchanged.
const jobColumns = `
	id, job_title, company_name, location, job_type, salary_range,
	job_description,
	to_char(application_deadline, 'YYYY-MM-DD') AS application_deadline,
	created_at
`

// Storage issues parameterized queries for jobs and applications. It holds no
// state besides the pooled connection and is safe for concurrent use.
type Storage struct {
	db *sqlx.DB
}

func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{db: pg.GetDB()}
}

// ListJobs returns all jobs, newest first
func (s *Storage) ListJobs(ctx context.Context) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at DESC, id DESC`

	jobs := []model.Job{}
	if err := s.db.SelectContext(ctx, &jobs, query); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// GetJob returns one job by id, or domain.ErrJobNotFound
func (s *Storage) GetJob(ctx context.Context, id int64) (*model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job model.Job
	if err := s.db.GetContext(ctx, &job, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

// CreateJob inserts a job and returns the store-assigned id
func (s *Storage) CreateJob(ctx context.Context, job *model.Job) (int64, error) {
	query := `
		INSERT INTO jobs (
			job_title, company_name, location, job_type,
			salary_range, job_description, application_deadline
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(
		ctx,
		query,
		job.JobTitle,
		job.CompanyName,
		job.Location,
		job.JobType,
		job.SalaryRange,
		job.JobDescription,
		job.ApplicationDeadline,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create job: %w", err)
	}

	return id, nil
}

// UpdateJob overwrites every mutable field of a job. Returns
// domain.ErrJobNotFound when no row matches.
func (s *Storage) UpdateJob(ctx context.Context, id int64, job *model.Job) error {
	query := `
		UPDATE jobs
		SET job_title = $1,
			company_name = $2,
			location = $3,
			job_type = $4,
			salary_range = $5,
			job_description = $6,
			application_deadline = $7
		WHERE id = $8
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		job.JobTitle,
		job.CompanyName,
		job.Location,
		job.JobType,
		job.SalaryRange,
		job.JobDescription,
		job.ApplicationDeadline,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrJobNotFound
	}

	return nil
}

// DeleteJob removes a job by id. Applications referencing it cascade away at
// the store level. Returns domain.ErrJobNotFound when no row matches.
func (s *Storage) DeleteJob(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrJobNotFound
	}

	return nil
}

// ListApplications returns all applications enriched with the parent job's
// title and company, newest first. Enrichment is a join at read time; nothing
// is denormalized into the applications table.
func (s *Storage) ListApplications(ctx context.Context) ([]model.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_name, a.email, a.applied_at,
			j.job_title, j.company_name
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		ORDER BY a.applied_at DESC, a.id DESC
	`

	apps := []model.Application{}
	if err := s.db.SelectContext(ctx, &apps, query); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}

// GetApplication returns one application by id, or domain.ErrApplicationNotFound
func (s *Storage) GetApplication(ctx context.Context, id int64) (*model.Application, error) {
	query := `
		SELECT id, job_id, applicant_name, email, applied_at
		FROM applications
		WHERE id = $1
	`

	var app model.Application
	if err := s.db.GetContext(ctx, &app, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return &app, nil
}

// ListApplicationsByJob returns the applications for one job, newest first
func (s *Storage) ListApplicationsByJob(ctx context.Context, jobID int64) ([]model.Application, error) {
	query := `
		SELECT id, job_id, applicant_name, email, applied_at
		FROM applications
		WHERE job_id = $1
		ORDER BY applied_at DESC, id DESC
	`

	apps := []model.Application{}
	if err := s.db.SelectContext(ctx, &apps, query, jobID); err != nil {
		return nil, fmt.Errorf("failed to list applications for job: %w", err)
	}

	return apps, nil
}

// CreateApplication inserts an application and returns the store-assigned id.
// The caller is responsible for checking that the referenced job exists
// before calling; the insert itself relies only on the FK as a backstop.
func (s *Storage) CreateApplication(ctx context.Context, app *model.Application) (int64, error) {
	query := `
		INSERT INTO applications (job_id, applicant_name, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(ctx, query, app.JobID, app.ApplicantName, app.Email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create application: %w", err)
	}

	return id, nil
}
