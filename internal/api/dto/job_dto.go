package dto

import (
	"github.com/careerlane/job-board-be/internal/api/domain"
	"github.com/careerlane/job-board-be/internal/api/model"
)

// JobRequest is the payload for creating or updating a job. Required-field
// checks run in Validate so that every missing field is reported, not just
// the first; gin's binding:"required" tags would stop at one.
type JobRequest struct {
	JobTitle            string  `json:"job_title"`
	CompanyName         string  `json:"company_name"`
	Location            string  `json:"location"`
	JobType             string  `json:"job_type"`
	SalaryRange         *string `json:"salary_range"`
	JobDescription      string  `json:"job_description"`
	ApplicationDeadline string  `json:"application_deadline"`
}

// Validate checks required fields and normalizes the deadline. On success it
// returns the job ready for persistence; otherwise a ValidationError naming
// every offending field.
func (r *JobRequest) Validate() (*model.Job, *domain.ValidationError) {
	var missing []string
	if r.JobTitle == "" {
		missing = append(missing, "job_title")
	}
	if r.CompanyName == "" {
		missing = append(missing, "company_name")
	}
	if r.Location == "" {
		missing = append(missing, "location")
	}
	if r.JobType == "" {
		missing = append(missing, "job_type")
	}
	if r.JobDescription == "" {
		missing = append(missing, "job_description")
	}
	if r.ApplicationDeadline == "" {
		missing = append(missing, "application_deadline")
	}

	if len(missing) > 0 {
		return nil, domain.NewValidationError("Missing required fields", missing...)
	}

	if !domain.IsValidJobType(r.JobType) {
		return nil, domain.NewValidationError("Invalid job type", "job_type")
	}

	deadline, err := domain.NormalizeDeadline(r.ApplicationDeadline)
	if err != nil {
		return nil, domain.NewValidationError("Invalid date format for application deadline", "application_deadline")
	}

	return &model.Job{
		JobTitle:            r.JobTitle,
		CompanyName:         r.CompanyName,
		Location:            r.Location,
		JobType:             r.JobType,
		SalaryRange:         r.SalaryRange,
		JobDescription:      r.JobDescription,
		ApplicationDeadline: deadline,
	}, nil
}

// CreateJobResponse is returned after a successful job creation
type CreateJobResponse struct {
	Message string `json:"message"`
	JobID   int64  `json:"jobId"`
	Status  int    `json:"status"`
}

// StatusResponse is returned for update/delete outcomes
type StatusResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse is the error envelope for every failure
type ErrorResponse struct {
	Message string   `json:"message"`
	Error   string   `json:"error,omitempty"`
	Status  int      `json:"status"`
	Fields  []string `json:"fields,omitempty"`
}
