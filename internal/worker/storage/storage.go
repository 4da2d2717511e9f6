package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/careerlane/job-board-be/internal/worker/domain"
	"github.com/jmoiron/sqlx"
)

// ApplicationDetail is an application joined with its job, everything the
// notification needs in one row.
type ApplicationDetail struct {
	ApplicationID int64     `db:"id"`
	JobID         int64     `db:"job_id"`
	ApplicantName string    `db:"applicant_name"`
	Email         string    `db:"email"`
	AppliedAt     time.Time `db:"applied_at"`
	JobTitle      string    `db:"job_title"`
	CompanyName   string    `db:"company_name"`
}

// Notification is a rendered confirmation written to the notifications table
type Notification struct {
	ApplicationID int64  `db:"application_id"`
	Recipient     string `db:"recipient"`
	Subject       string `db:"subject"`
	Body          string `db:"body"`
}

// Storage handles all database operations for the worker
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStorage creates a new Storage instance
func NewStorage(db *sqlx.DB, logger *slog.Logger) *Storage {
	return &Storage{
		db:     db,
		logger: logger,
	}
}

// GetApplicationDetail loads an application joined with its job
func (s *Storage) GetApplicationDetail(ctx context.Context, applicationID int64) (*ApplicationDetail, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_name, a.email, a.applied_at,
			j.job_title, j.company_name
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1
	`

	var detail ApplicationDetail
	if err := s.db.GetContext(ctx, &detail, query, applicationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application detail: %w", err)
	}

	return &detail, nil
}

// CreateNotification inserts a notification row
func (s *Storage) CreateNotification(ctx context.Context, n *Notification) error {
	query := `
		INSERT INTO notifications (application_id, recipient, subject, body)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := s.db.ExecContext(ctx, query, n.ApplicationID, n.Recipient, n.Subject, n.Body); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	s.logger.Info("Notification recorded",
		slog.Int64("application_id", n.ApplicationID),
		slog.String("recipient", n.Recipient),
	)

	return nil
}
