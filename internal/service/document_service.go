package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/docgen"
	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/model"
	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/repository"
)

const (
	DocumentTypeResume      = "resume"
	DocumentTypeCoverLetter = "cover_letter"
)

var (
	ErrInvalidDocumentType = errors.New("invalid document type")
	ErrJobIDRequired       = errors.New("job ID required for cover letter")
)

// DocumentService generates mock resumes and cover letters from the
// authenticated seeker's profile
type DocumentService interface {
	Generate(ctx context.Context, jobSeekerID string, req model.GenerateDocumentRequest) (*model.GeneratedDocument, error)
}

type documentService struct {
	userRepo repository.UserRepository
	jobRepo  repository.JobRepository
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(userRepo repository.UserRepository, jobRepo repository.JobRepository) DocumentService {
	return &documentService{userRepo: userRepo, jobRepo: jobRepo}
}

// Generate produces the requested document. Cover letters need a job_id
// that resolves to an existing job.
func (s *documentService) Generate(ctx context.Context, jobSeekerID string, req model.GenerateDocumentRequest) (*model.GeneratedDocument, error) {
	profile, err := s.userRepo.FindByID(ctx, jobSeekerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for document generation: %w", err)
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	var content string
	switch req.DocumentType {
	case DocumentTypeResume:
		content = docgen.Resume(profile)
	case DocumentTypeCoverLetter:
		if req.JobID == nil || *req.JobID == "" {
			return nil, ErrJobIDRequired
		}
		job, err := s.jobRepo.FindByID(ctx, *req.JobID)
		if err != nil {
			return nil, fmt.Errorf("failed to find job for cover letter: %w", err)
		}
		if job == nil {
			return nil, ErrJobNotFound
		}
		content = docgen.CoverLetter(profile, job)
	default:
		return nil, ErrInvalidDocumentType
	}

	return &model.GeneratedDocument{Content: content, Type: req.DocumentType}, nil
}
