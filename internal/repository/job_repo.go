package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/model"

	"github.com/jackc/pgx/v5"
)

// JobRepository defines operations for job posting data
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id string) (*model.Job, error)
	FindActive(ctx context.Context, filters model.JobFilters) ([]model.Job, error)
	FindByEmployer(ctx context.Context, employerID string) ([]model.Job, error)
}

type jobRepository struct {
	db DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db DB) JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `id, title, company, description, requirements, salary, location, job_type, employer_id, is_active, created_at`

// Create inserts a new job posting into the database
func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	sql := `INSERT INTO jobs (id, title, company, description, requirements, salary, location, job_type, employer_id, is_active, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, sql,
		job.ID, job.Title, job.Company, job.Description, job.Requirements,
		job.Salary, job.Location, job.JobType, job.EmployerID, job.IsActive, job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// FindByID retrieves a job by its ID
func (r *jobRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	sql := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find job by ID: %w", err)
	}
	return job, nil
}

// FindActive retrieves active jobs with optional search and type filters.
// Search matches title, company or location case-insensitively.
func (r *jobRepository) FindActive(ctx context.Context, filters model.JobFilters) ([]model.Job, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + jobColumns + ` FROM jobs WHERE is_active = TRUE`)
	args := []any{}
	argCount := 1

	if filters.Search != nil && *filters.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (title ILIKE $%d OR company ILIKE $%d OR location ILIKE $%d)", argCount, argCount, argCount))
		args = append(args, "%"+*filters.Search+"%")
		argCount++
	}
	if filters.JobType != nil && *filters.JobType != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND job_type = $%d", argCount))
		args = append(args, *filters.JobType)
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query active jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// FindByEmployer retrieves all jobs posted by an employer
func (r *jobRepository) FindByEmployer(ctx context.Context, employerID string) ([]model.Job, error) {
	sql := `SELECT ` + jobColumns + ` FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs by employer: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

func scanJob(row pgx.Row) (*model.Job, error) {
	job := &model.Job{}
	err := row.Scan(
		&job.ID, &job.Title, &job.Company, &job.Description, &job.Requirements,
		&job.Salary, &job.Location, &job.JobType, &job.EmployerID, &job.IsActive, &job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func collectJobs(rows pgx.Rows) ([]model.Job, error) {
	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.Description, &j.Requirements,
			&j.Salary, &j.Location, &j.JobType, &j.EmployerID, &j.IsActive, &j.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}
	return jobs, nil
}
