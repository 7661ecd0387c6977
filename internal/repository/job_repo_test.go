package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jobCols = []string{"id", "title", "company", "description", "requirements", "salary", "location", "job_type", "employer_id", "is_active", "created_at"}

func jobRow(rows *pgxmock.Rows, id, title, company string, createdAt time.Time) *pgxmock.Rows {
	return rows.AddRow(id, title, company, "desc", "reqs", nil, "Remote", model.JobTypeFullTime, "employer-1", true, createdAt)
}

func TestJobRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJobRepository(mock)
	job := &model.Job{
		ID:           "job-1",
		Title:        "Backend Engineer",
		Company:      "Acme Corp",
		Description:  "Build services",
		Requirements: "Go experience",
		Location:     "Remote",
		JobType:      model.JobTypeFullTime,
		EmployerID:   "employer-1",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO jobs")).
		WithArgs(job.ID, job.Title, job.Company, job.Description, job.Requirements,
			job.Salary, job.Location, job.JobType, job.EmployerID, job.IsActive, job.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), job)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_FindActive_NoFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJobRepository(mock)
	now := time.Now().UTC()

	rows := pgxmock.NewRows(jobCols)
	rows = jobRow(rows, "job-1", "Backend Engineer", "Acme Corp", now)
	rows = jobRow(rows, "job-2", "Frontend Developer", "Initech", now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs WHERE is_active = TRUE ORDER BY created_at DESC")).
		WillReturnRows(rows)

	jobs, err := repo.FindActive(context.Background(), model.JobFilters{})
	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_FindActive_SearchAndType(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJobRepository(mock)
	search := "Developer"
	jobType := model.JobTypeFullTime

	// Search ORs title/company/location; job_type ANDs on top
	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs WHERE is_active = TRUE AND (title ILIKE $1 OR company ILIKE $1 OR location ILIKE $1) AND job_type = $2")).
		WithArgs("%Developer%", model.JobTypeFullTime).
		WillReturnRows(jobRow(pgxmock.NewRows(jobCols), "job-2", "Frontend Developer", "Initech", time.Now().UTC()))

	jobs, err := repo.FindActive(context.Background(), model.JobFilters{Search: &search, JobType: &jobType})
	assert.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job-2", jobs[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJobRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	job, err := repo.FindByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, job)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_FindByEmployer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJobRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC")).
		WithArgs("employer-1").
		WillReturnRows(jobRow(pgxmock.NewRows(jobCols), "job-1", "Backend Engineer", "Acme Corp", time.Now().UTC()))

	jobs, err := repo.FindByEmployer(context.Background(), "employer-1")
	assert.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "employer-1", jobs[0].EmployerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
