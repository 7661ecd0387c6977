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

var ErrAlreadyApplied = errors.New("already applied for this job")

// ApplicationService defines operations for job applications
type ApplicationService interface {
	Apply(ctx context.Context, jobSeekerID string, req model.CreateApplicationRequest) (*model.Application, error)
	ListSeekerApplications(ctx context.Context, jobSeekerID string) ([]model.ApplicationWithJob, error)
	ListJobApplications(ctx context.Context, employerID, jobID string) ([]model.ApplicationWithApplicant, error)
}

type applicationService struct {
	appRepo  repository.ApplicationRepository
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(appRepo repository.ApplicationRepository, jobRepo repository.JobRepository, userRepo repository.UserRepository) ApplicationService {
	return &applicationService{appRepo: appRepo, jobRepo: jobRepo, userRepo: userRepo}
}

// Apply submits an application for a job. The seeker identity comes from
// the token; a seeker can apply to a given job at most once.
func (s *applicationService) Apply(ctx context.Context, jobSeekerID string, req model.CreateApplicationRequest) (*model.Application, error) {
	job, err := s.jobRepo.FindByID(ctx, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to find job for application: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	existing, err := s.appRepo.FindByJobAndSeeker(ctx, req.JobID, jobSeekerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	application := &model.Application{
		ID:                 uuid.NewString(),
		JobID:              req.JobID,
		JobSeekerID:        jobSeekerID,
		ResumeContent:      req.ResumeContent,
		CoverLetterContent: req.CoverLetterContent,
		Status:             model.StatusApplied,
		AppliedAt:          time.Now().UTC(),
	}

	if err := s.appRepo.Create(ctx, application); err != nil {
		// The unique constraint catches concurrent submissions that both
		// passed the pre-check above
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application in repo: %w", err)
	}
	return application, nil
}

// ListSeekerApplications returns the seeker's applications, each joined
// with its job record. Applications whose job has disappeared are skipped.
func (s *applicationService) ListSeekerApplications(ctx context.Context, jobSeekerID string) ([]model.ApplicationWithJob, error) {
	apps, err := s.appRepo.FindBySeeker(ctx, jobSeekerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seeker applications: %w", err)
	}

	result := []model.ApplicationWithJob{}
	for _, app := range apps {
		job, err := s.jobRepo.FindByID(ctx, app.JobID)
		if err != nil {
			return nil, fmt.Errorf("failed to find job for application %s: %w", app.ID, err)
		}
		if job == nil {
			continue
		}
		result = append(result, model.ApplicationWithJob{Application: app, Job: job})
	}
	return result, nil
}

// ListJobApplications returns the applications for one of the employer's
// jobs, each joined with the applicant's profile. A job that does not
// exist or is not owned by the caller is reported as not found.
func (s *applicationService) ListJobApplications(ctx context.Context, employerID, jobID string) ([]model.ApplicationWithApplicant, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to find job for applications view: %w", err)
	}
	if job == nil || job.EmployerID != employerID {
		return nil, ErrJobNotFound
	}

	apps, err := s.appRepo.FindByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}

	result := []model.ApplicationWithApplicant{}
	for _, app := range apps {
		user, err := s.userRepo.FindByID(ctx, app.JobSeekerID)
		if err != nil {
			return nil, fmt.Errorf("failed to find applicant for application %s: %w", app.ID, err)
		}
		if user == nil {
			continue
		}
		result = append(result, model.ApplicationWithApplicant{
			Application: app,
			Applicant: &model.ApplicantProfile{
				ID:         user.ID,
				FullName:   user.FullName,
				Email:      user.Email,
				Skills:     user.Skills,
				Experience: user.Experience,
				Education:  user.Education,
			},
		})
	}
	return result, nil
}
