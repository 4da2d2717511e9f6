package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJobRequest() *JobRequest {
	salary := "90k-120k USD"
	return &JobRequest{
		JobTitle:            "Backend Engineer",
		CompanyName:         "Acme",
		Location:            "Remote",
		JobType:             "Full-time",
		SalaryRange:         &salary,
		JobDescription:      "Build and run backend services.",
		ApplicationDeadline: "2025-12-31",
	}
}

func TestJobRequest_Validate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		job, verr := validJobRequest().Validate()
		require.Nil(t, verr)
		require.NotNil(t, job)

		assert.Equal(t, "Backend Engineer", job.JobTitle)
		assert.Equal(t, "Acme", job.CompanyName)
		assert.Equal(t, "2025-12-31", job.ApplicationDeadline)
		require.NotNil(t, job.SalaryRange)
		assert.Equal(t, "90k-120k USD", *job.SalaryRange)
	})

	t.Run("salary range is optional", func(t *testing.T) {
		req := validJobRequest()
		req.SalaryRange = nil

		job, verr := req.Validate()
		require.Nil(t, verr)
		assert.Nil(t, job.SalaryRange)
	})

	t.Run("every missing field is reported", func(t *testing.T) {
		job, verr := (&JobRequest{}).Validate()
		require.Nil(t, job)
		require.NotNil(t, verr)

		assert.Equal(t, "Missing required fields", verr.Message)
		assert.Equal(t, []string{
			"job_title",
			"company_name",
			"location",
			"job_type",
			"job_description",
			"application_deadline",
		}, verr.Fields)
	})

	t.Run("single missing field", func(t *testing.T) {
		req := validJobRequest()
		req.Location = ""

		job, verr := req.Validate()
		require.Nil(t, job)
		require.NotNil(t, verr)
		assert.Equal(t, []string{"location"}, verr.Fields)
	})

	t.Run("unknown job type", func(t *testing.T) {
		req := validJobRequest()
		req.JobType = "Freelance"

		job, verr := req.Validate()
		require.Nil(t, job)
		require.NotNil(t, verr)
		assert.Equal(t, "Invalid job type", verr.Message)
		assert.Equal(t, []string{"job_type"}, verr.Fields)
	})

	t.Run("deadline gets normalized", func(t *testing.T) {
		req := validJobRequest()
		req.ApplicationDeadline = "December 31, 2025"

		job, verr := req.Validate()
		require.Nil(t, verr)
		assert.Equal(t, "2025-12-31", job.ApplicationDeadline)
	})

	t.Run("unparseable deadline is rejected", func(t *testing.T) {
		req := validJobRequest()
		req.ApplicationDeadline = "whenever"

		job, verr := req.Validate()
		require.Nil(t, job)
		require.NotNil(t, verr)
		assert.Equal(t, "Invalid date format for application deadline", verr.Message)
		assert.Equal(t, []string{"application_deadline"}, verr.Fields)
	})
}

func TestApplicationRequest_Validate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		req := &ApplicationRequest{ApplicantName: "Jordan Doe", Email: "jordan@example.com"}

		app, verr := req.Validate(42)
		require.Nil(t, verr)
		require.NotNil(t, app)

		assert.Equal(t, int64(42), app.JobID)
		assert.Equal(t, "Jordan Doe", app.ApplicantName)
		assert.Equal(t, "jordan@example.com", app.Email)
	})

	t.Run("missing fields are all reported", func(t *testing.T) {
		app, verr := (&ApplicationRequest{}).Validate(1)
		require.Nil(t, app)
		require.NotNil(t, verr)
		assert.Equal(t, []string{"applicant_name", "email"}, verr.Fields)
	})

	t.Run("bad email shape", func(t *testing.T) {
		tests := []string{
			"not-an-email",
			"no-at-sign.com",
			"two@@example.com",
			"spaces in@example.com",
			"missing@tld",
		}

		for _, email := range tests {
			req := &ApplicationRequest{ApplicantName: "Jordan", Email: email}
			app, verr := req.Validate(1)
			require.Nil(t, app, email)
			require.NotNil(t, verr, email)
			assert.Equal(t, "Invalid email format", verr.Message)
			assert.Equal(t, []string{"email"}, verr.Fields)
		}
	})
}
