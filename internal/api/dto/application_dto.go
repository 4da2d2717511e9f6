package dto

import (
	"regexp"

	"github.com/careerlane/job-board-be/internal/api/domain"
	"github.com/careerlane/job-board-be/internal/api/model"
)

// emailPattern is the local@domain.tld shape required of applicant emails
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ApplicationRequest is the payload for applying to a job
type ApplicationRequest struct {
	ApplicantName string `json:"applicant_name"`
	Email         string `json:"email"`
}

// Validate checks applicant fields and the email shape. The job reference is
// validated by the handler against the store, not here.
func (r *ApplicationRequest) Validate(jobID int64) (*model.Application, *domain.ValidationError) {
	var missing []string
	if r.ApplicantName == "" {
		missing = append(missing, "applicant_name")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}

	if len(missing) > 0 {
		return nil, domain.NewValidationError("Missing required fields", missing...)
	}

	if !emailPattern.MatchString(r.Email) {
		return nil, domain.NewValidationError("Invalid email format", "email")
	}

	return &model.Application{
		JobID:         jobID,
		ApplicantName: r.ApplicantName,
		Email:         r.Email,
	}, nil
}

// ApplyResponse is returned after a successful application submission
type ApplyResponse struct {
	Message       string `json:"message"`
	ApplicationID int64  `json:"applicationId"`
	Status        int    `json:"status"`
}
