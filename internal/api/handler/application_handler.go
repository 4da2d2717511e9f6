package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/careerlane/job-board-be/internal/api/domain"
	"github.com/careerlane/job-board-be/internal/api/dto"
	"github.com/gin-gonic/gin"
)

// applicationEvent is the message published for the notification worker
type applicationEvent struct {
	ApplicationID int64 `json:"application_id"`
	JobID         int64 `json:"job_id"`
}

// ListApplications handles GET /api/applications
// Each application carries the parent job's title and company, joined at
// read time.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.applications.ListApplications(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list applications", slog.Any("error", err))
		respondStoreError(c, "Failed to fetch applications", err, h.expose)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// GetApplication handles GET /api/applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid application ID format")
		return
	}

	app, err := h.applications.GetApplication(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			respondError(c, http.StatusNotFound, "Application not found")
			return
		}
		h.logger.Error("Failed to get application",
			slog.Int64("application_id", id),
			slog.Any("error", err),
		)
		respondStoreError(c, "Failed to fetch application details", err, h.expose)
		return
	}

	c.JSON(http.StatusOK, app)
}

// ListJobApplications handles GET /api/jobs/:id/applications
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	jobID, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	if _, err := h.jobs.GetJob(c.Request.Context(), jobID); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			respondError(c, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("Failed to load job for application listing",
			slog.Int64("job_id", jobID),
			slog.Any("error", err),
		)
		respondStoreError(c, "Failed to fetch applications", err, h.expose)
		return
	}

	apps, err := h.applications.ListApplicationsByJob(c.Request.Context(), jobID)
	if err != nil {
		h.logger.Error("Failed to list applications for job",
			slog.Int64("job_id", jobID),
			slog.Any("error", err),
		)
		respondStoreError(c, "Failed to fetch applications", err, h.expose)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// ApplyForJob handles POST /api/jobs/:id/apply
// The referenced job is loaded before the insert; a missing job fails with
// 404 and writes nothing.
func (h *ApplicationHandler) ApplyForJob(c *gin.Context) {
	jobID, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	var req dto.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Request body is empty")
		return
	}

	app, verr := req.Validate(jobID)
	if verr != nil {
		respondValidation(c, verr.Message, verr.Fields)
		return
	}

	// Existence check before the write. The FK is only a backstop.
	if _, err := h.jobs.GetJob(c.Request.Context(), jobID); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			respondError(c, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("Failed to load job for application",
			slog.Int64("job_id", jobID),
			slog.Any("error", err),
		)
		respondStoreError(c, "Error submitting application", err, h.expose)
		return
	}

	id, err := h.applications.CreateApplication(c.Request.Context(), app)
	if err != nil {
		h.logger.Error("Failed to create application",
			slog.Int64("job_id", jobID),
			slog.Any("error", err),
		)
		respondStoreError(c, "Error submitting application", err, h.expose)
		return
	}

	h.logger.Info("Application submitted",
		slog.Int64("application_id", id),
		slog.Int64("job_id", jobID),
	)

	h.publishSubmitted(c, id, jobID)

	c.JSON(http.StatusCreated, dto.ApplyResponse{
		Message:       "Application submitted successfully",
		ApplicationID: id,
		Status:        http.StatusCreated,
	})
}

// publishSubmitted emits the application.submitted event. Publish failures
// are logged and never fail the request; the application row is already
// committed.
func (h *ApplicationHandler) publishSubmitted(c *gin.Context, applicationID, jobID int64) {
	if h.publisher == nil {
		return
	}

	body, err := json.Marshal(applicationEvent{
		ApplicationID: applicationID,
		JobID:         jobID,
	})
	if err != nil {
		h.logger.Error("Failed to encode application event",
			slog.Int64("application_id", applicationID),
			slog.Any("error", err),
		)
		return
	}

	if err := h.publisher.Publish(c.Request.Context(), body, "application/json"); err != nil {
		h.logger.Warn("Failed to publish application event",
			slog.Int64("application_id", applicationID),
			slog.Any("error", err),
		)
	}
}
