package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/careerlane/job-board-be/internal/api/domain"
	"github.com/careerlane/job-board-be/internal/api/dto"
	"github.com/gin-gonic/gin"
)

// ListJobs handles GET /api/jobs
// Returns every job, newest first. The surface has no pagination.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.ListJobs(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list jobs", slog.Any("error", err))
		respondStoreError(c, "Failed to fetch jobs", err, h.expose)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJob handles GET /api/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	job, err := h.jobs.GetJob(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			respondError(c, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("Failed to get job",
			slog.Int64("job_id", id),
			slog.Any("error", err),
		)
		respondStoreError(c, "Failed to fetch job details", err, h.expose)
		return
	}

	c.JSON(http.StatusOK, job)
}

// CreateJob handles POST /api/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Request body is empty")
		return
	}

	job, verr := req.Validate()
	if verr != nil {
		h.logger.Info("Job validation failed",
			slog.String("message", verr.Message),
			slog.Any("fields", verr.Fields),
		)
		respondValidation(c, verr.Message, verr.Fields)
		return
	}

	id, err := h.jobs.CreateJob(c.Request.Context(), job)
	if err != nil {
		h.logger.Error("Failed to create job", slog.Any("error", err))
		respondStoreError(c, "Error creating job", err, h.expose)
		return
	}

	h.logger.Info("Job created",
		slog.Int64("job_id", id),
		slog.String("job_title", job.JobTitle),
	)

	c.JSON(http.StatusCreated, dto.CreateJobResponse{
		Message: "Job created successfully",
		JobID:   id,
		Status:  http.StatusCreated,
	})
}

// UpdateJob handles PUT /api/jobs/:id
// A full-field overwrite: the payload is validated exactly like a create,
// including deadline normalization.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	var req dto.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Request body is empty")
		return
	}

	job, verr := req.Validate()
	if verr != nil {
		respondValidation(c, verr.Message, verr.Fields)
		return
	}

	if err := h.jobs.UpdateJob(c.Request.Context(), id, job); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			respondError(c, http.StatusNotFound, "Job not found or not updated")
			return
		}
		h.logger.Error("Failed to update job",
			slog.Int64("job_id", id),
			slog.Any("error", err),
		)
		respondStoreError(c, "Error updating job", err, h.expose)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Message: "Job updated successfully",
		Status:  http.StatusOK,
	})
}

// DeleteJob handles DELETE /api/jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	if err := h.jobs.DeleteJob(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			respondError(c, http.StatusNotFound, "Job not found or not deleted")
			return
		}
		h.logger.Error("Failed to delete job",
			slog.Int64("job_id", id),
			slog.Any("error", err),
		)
		respondStoreError(c, "Error deleting job", err, h.expose)
		return
	}

	h.logger.Info("Job deleted", slog.Int64("job_id", id))

	c.JSON(http.StatusOK, dto.StatusResponse{
		Message: "Job deleted successfully",
		Status:  http.StatusOK,
	})
}
