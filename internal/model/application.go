package model

import "time"

// StatusApplied is the initial (and currently only) application status.
const StatusApplied = "applied"

// Application represents a job seeker's submission to a job
type Application struct {
	ID                 string    `json:"id"`
	JobID              string    `json:"job_id"`
	JobSeekerID        string    `json:"job_seeker_id"`
	ResumeContent      string    `json:"resume_content"`
	CoverLetterContent string    `json:"cover_letter_content"`
	AppliedAt          time.Time `json:"applied_at"`
	Status             string    `json:"status"`
}

// CreateApplicationRequest is used by job seekers to apply for a job.
// The seeker identity always comes from the token, never the body.
type CreateApplicationRequest struct {
	JobID              string `json:"job_id" binding:"required"`
	ResumeContent      string `json:"resume_content" binding:"required"`
	CoverLetterContent string `json:"cover_letter_content" binding:"required"`
}

// ApplicationWithJob is an application joined with its job record,
// returned by the seeker's "my applications" view.
type ApplicationWithJob struct {
	Application
	Job *Job `json:"job"`
}

// ApplicationWithApplicant is an application joined with the applicant's
// profile, returned by the employer's per-job applications view.
type ApplicationWithApplicant struct {
	Application
	Applicant *ApplicantProfile `json:"applicant"`
}

// GenerateDocumentRequest asks for a mock resume or cover letter.
// JobID is required only for cover letters.
type GenerateDocumentRequest struct {
	DocumentType string  `json:"document_type" binding:"required,oneof=resume cover_letter"`
	JobID        *string `json:"job_id"`
}

// GeneratedDocument is the response of the document generation endpoint
type GeneratedDocument struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}
