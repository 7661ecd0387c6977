package model

import "time"

const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

// Job represents a job posting created by an employer
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Salary       *string   `json:"salary,omitempty"` // Pointer for optional field
	Location     string    `json:"location"`
	JobType      string    `json:"job_type"`
	EmployerID   string    `json:"employer_id"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}

// CreateJobRequest is used by employers to post a new job
type CreateJobRequest struct {
	Title        string  `json:"title" binding:"required"`
	Company      string  `json:"company" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Requirements string  `json:"requirements" binding:"required"`
	Salary       *string `json:"salary"`
	Location     string  `json:"location" binding:"required"`
	JobType      string  `json:"job_type" binding:"required,oneof=full_time part_time contract internship"`
}

// JobFilters contains filter parameters for the public job listing.
// Search matches title, company or location case-insensitively; both
// filters combine with the implicit is_active = true.
type JobFilters struct {
	Search  *string
	JobType *string
}
