package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/careerlane/job-board-be/internal/api/dto"
	"github.com/careerlane/job-board-be/internal/api/model"
	"github.com/careerlane/job-board-be/shared/postgresql"
	"github.com/gin-gonic/gin"
)

// JobStore is the repository contract for jobs. Lookup and mutation methods
// return domain.ErrJobNotFound when no row matches.
type JobStore interface {
	ListJobs(ctx context.Context) ([]model.Job, error)
	GetJob(ctx context.Context, id int64) (*model.Job, error)
	CreateJob(ctx context.Context, job *model.Job) (int64, error)
	UpdateJob(ctx context.Context, id int64, job *model.Job) error
	DeleteJob(ctx context.Context, id int64) error
}

// ApplicationStore is the repository contract for applications
type ApplicationStore interface {
	ListApplications(ctx context.Context) ([]model.Application, error)
	GetApplication(ctx context.Context, id int64) (*model.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID int64) ([]model.Application, error)
	CreateApplication(ctx context.Context, app *model.Application) (int64, error)
}

// EventPublisher emits application events for the notification worker
type EventPublisher interface {
	Publish(ctx context.Context, body []byte, contentType string) error
}

// HealthChecker reports whether the data store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Dependencies holds everything handlers need. Stores are interfaces so
// tests can substitute fakes for the database.
type Dependencies struct {
	Logger       *slog.Logger
	Jobs         JobStore
	Applications ApplicationStore
	Publisher    EventPublisher
	Health       HealthChecker
	Environment  string
}

// JobHandler handles job-related HTTP requests
type JobHandler struct {
	logger *slog.Logger
	jobs   JobStore
	expose bool
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger: deps.Logger,
		jobs:   deps.Jobs,
		expose: deps.Environment != "production",
	}
}

// ApplicationHandler handles application-related HTTP requests
type ApplicationHandler struct {
	logger       *slog.Logger
	jobs         JobStore
	applications ApplicationStore
	publisher    EventPublisher
	expose       bool
}

// NewApplicationHandler creates a new ApplicationHandler instance
func NewApplicationHandler(deps *Dependencies) *ApplicationHandler {
	return &ApplicationHandler{
		logger:       deps.Logger,
		jobs:         deps.Jobs,
		applications: deps.Applications,
		publisher:    deps.Publisher,
		expose:       deps.Environment != "production",
	}
}

// parseID extracts the numeric :id path parameter
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// respondError writes the standard error envelope
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{
		Message: message,
		Status:  status,
	})
}

// respondValidation writes a 400 naming every offending field
func respondValidation(c *gin.Context, message string, fields []string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Message: message,
		Status:  http.StatusBadRequest,
		Fields:  fields,
	})
}

// respondStoreError maps a data-layer failure to 503 when the store is
// unreachable and 500 otherwise. Error detail is returned only outside
// production; the full error is always logged by the caller.
func respondStoreError(c *gin.Context, message string, err error, expose bool) {
	if postgresql.IsUnavailable(err) {
		resp := dto.ErrorResponse{
			Message: "Database connection failed",
			Status:  http.StatusServiceUnavailable,
		}
		if expose {
			resp.Error = "Cannot connect to PostgreSQL server"
		}
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	resp := dto.ErrorResponse{
		Message: message,
		Status:  http.StatusInternalServerError,
	}
	if expose {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}
