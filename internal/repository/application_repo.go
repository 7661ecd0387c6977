package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateApplication signals the seeker already applied for the job.
// The unique constraint on (job_id, job_seeker_id) raises it even when two
// concurrent requests both pass the existence pre-check.
var ErrDuplicateApplication = errors.New("already applied for this job")

// ApplicationRepository defines operations for application data
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	FindByJobAndSeeker(ctx context.Context, jobID, jobSeekerID string) (*model.Application, error)
	FindBySeeker(ctx context.Context, jobSeekerID string) ([]model.Application, error)
	FindByJob(ctx context.Context, jobID string) ([]model.Application, error)
}

type applicationRepository struct {
	db DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, job_id, job_seeker_id, resume_content, cover_letter_content, status, applied_at`

// Create inserts a new application into the database
func (r *applicationRepository) Create(ctx context.Context, app *model.Application) error {
	sql := `INSERT INTO applications (id, job_id, job_seeker_id, resume_content, cover_letter_content, status, applied_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, sql,
		app.ID, app.JobID, app.JobSeekerID, app.ResumeContent,
		app.CoverLetterContent, app.Status, app.AppliedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateApplication
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// FindByJobAndSeeker retrieves an application by its (job, seeker) pair
func (r *applicationRepository) FindByJobAndSeeker(ctx context.Context, jobID, jobSeekerID string) (*model.Application, error) {
	sql := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 AND job_seeker_id = $2`
	app := &model.Application{}
	err := r.db.QueryRow(ctx, sql, jobID, jobSeekerID).Scan(
		&app.ID, &app.JobID, &app.JobSeekerID, &app.ResumeContent,
		&app.CoverLetterContent, &app.Status, &app.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return app, nil
}

// FindBySeeker retrieves all applications submitted by a job seeker
func (r *applicationRepository) FindBySeeker(ctx context.Context, jobSeekerID string) ([]model.Application, error) {
	sql := `SELECT ` + applicationColumns + ` FROM applications WHERE job_seeker_id = $1 ORDER BY applied_at DESC`
	rows, err := r.db.Query(ctx, sql, jobSeekerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications by seeker: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows)
}

// FindByJob retrieves all applications submitted for a job
func (r *applicationRepository) FindByJob(ctx context.Context, jobID string) ([]model.Application, error) {
	sql := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 ORDER BY applied_at DESC`
	rows, err := r.db.Query(ctx, sql, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications by job: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows)
}

func collectApplications(rows pgx.Rows) ([]model.Application, error) {
	var apps []model.Application
	for rows.Next() {
		var a model.Application
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.JobSeekerID, &a.ResumeContent,
			&a.CoverLetterContent, &a.Status, &a.AppliedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}
	return apps, nil
}
