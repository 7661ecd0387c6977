package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/model"
	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/repository"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

// JobService defines operations for job postings
type JobService interface {
	CreateJob(ctx context.Context, employerID string, req model.CreateJobRequest) (*model.Job, error)
	ListJobs(ctx context.Context, filters model.JobFilters) ([]model.Job, error)
	GetJob(ctx context.Context, id string) (*model.Job, error)
	ListEmployerJobs(ctx context.Context, employerID string) ([]model.Job, error)
}

type jobService struct {
	jobRepo repository.JobRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

// CreateJob creates a job posting owned by the authenticated employer
func (s *jobService) CreateJob(ctx context.Context, employerID string, req model.CreateJobRequest) (*model.Job, error) {
	job := &model.Job{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Company:      req.Company,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		Location:     req.Location,
		JobType:      req.JobType,
		EmployerID:   employerID,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job in repo: %w", err)
	}
	return job, nil
}

// ListJobs returns active jobs matching the optional search and type filters
func (s *jobService) ListJobs(ctx context.Context, filters model.JobFilters) ([]model.Job, error) {
	jobs, err := s.jobRepo.FindActive(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs from repo: %w", err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

// GetJob retrieves a single job posting by ID
func (s *jobService) GetJob(ctx context.Context, id string) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find job by ID: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// ListEmployerJobs returns every job owned by the authenticated employer
func (s *jobService) ListEmployerJobs(ctx context.Context, employerID string) ([]model.Job, error) {
	jobs, err := s.jobRepo.FindByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employer jobs from repo: %w", err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}
