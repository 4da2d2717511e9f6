package model

import "time"

// Job is a posted position as stored in the jobs table. The deadline is
// selected as text in canonical YYYY-MM-DD form.
type Job struct {
	ID                  int64     `db:"id" json:"id"`
	JobTitle            string    `db:"job_title" json:"job_title"`
	CompanyName         string    `db:"company_name" json:"company_name"`
	Location            string    `db:"location" json:"location"`
	JobType             string    `db:"job_type" json:"job_type"`
	SalaryRange         *string   `db:"salary_range" json:"salary_range"`
	JobDescription      string    `db:"job_description" json:"job_description"`
	ApplicationDeadline string    `db:"application_deadline" json:"application_deadline"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}

// Application is a submission against a job. JobTitle and CompanyName are
// populated only by the joined list query.
type Application struct {
	ID            int64     `db:"id" json:"id"`
	JobID         int64     `db:"job_id" json:"job_id"`
	ApplicantName string    `db:"applicant_name" json:"applicant_name"`
	Email         string    `db:"email" json:"email"`
	AppliedAt     time.Time `db:"applied_at" json:"applied_at"`
	JobTitle      string    `db:"job_title" json:"job_title,omitempty"`
	CompanyName   string    `db:"company_name" json:"company_name,omitempty"`
}
