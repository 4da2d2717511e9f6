package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/careerlane/job-board-be/internal/worker/domain"
	"github.com/careerlane/job-board-be/internal/worker/storage"
)

// processEvent records a confirmation notification for one submitted
// application. The lookup joins the application with its job; if the row is
// gone (job deleted, cascade) the event is dropped.
func (w *Worker) processEvent(ctx context.Context, msg *domain.ApplicationMessage) error {
	w.logger.Info("Processing application event",
		slog.Int64("application_id", msg.ApplicationID),
		slog.Int64("job_id", msg.JobID),
	)

	detail, err := w.storage.GetApplicationDetail(ctx, msg.ApplicationID)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			w.logger.Warn("Application no longer exists, dropping event",
				slog.Int64("application_id", msg.ApplicationID),
			)
			return err
		}
		return fmt.Errorf("failed to load application: %w", err)
	}

	notification := buildNotification(detail)

	if err := w.storage.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	w.logger.Info("Application notification recorded",
		slog.Int64("application_id", detail.ApplicationID),
		slog.String("job_title", detail.JobTitle),
	)

	return nil
}

// buildNotification renders the confirmation addressed to the applicant
func buildNotification(detail *storage.ApplicationDetail) *storage.Notification {
	subject := fmt.Sprintf("Application received: %s at %s", detail.JobTitle, detail.CompanyName)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour application for %s at %s was received on %s. The hiring team will review it and get back to you.\n",
		detail.ApplicantName,
		detail.JobTitle,
		detail.CompanyName,
		detail.AppliedAt.Format("2006-01-02"),
	)

	return &storage.Notification{
		ApplicationID: detail.ApplicationID,
		Recipient:     detail.Email,
		Subject:       subject,
		Body:          body,
	}
}
