package service

import (
	"context"

	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/model"
)

// Function-field fakes for the repository interfaces. Unset fields mean
// "not found" with no error, which is the repositories' miss contract.

type fakeUserRepo struct {
	createFn      func(ctx context.Context, user *model.User) error
	findByEmailFn func(ctx context.Context, email string) (*model.User, error)
	findByIDFn    func(ctx context.Context, id string) (*model.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

type fakeJobRepo struct {
	createFn         func(ctx context.Context, job *model.Job) error
	findByIDFn       func(ctx context.Context, id string) (*model.Job, error)
	findActiveFn     func(ctx context.Context, filters model.JobFilters) ([]model.Job, error)
	findByEmployerFn func(ctx context.Context, employerID string) ([]model.Job, error)
}

func (f *fakeJobRepo) Create(ctx context.Context, job *model.Job) error {
	if f.createFn != nil {
		return f.createFn(ctx, job)
	}
	return nil
}

func (f *fakeJobRepo) FindByID(ctx context.Context, id string) (*model.Job, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeJobRepo) FindActive(ctx context.Context, filters model.JobFilters) ([]model.Job, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx, filters)
	}
	return nil, nil
}

func (f *fakeJobRepo) FindByEmployer(ctx context.Context, employerID string) ([]model.Job, error) {
	if f.findByEmployerFn != nil {
		return f.findByEmployerFn(ctx, employerID)
	}
	return nil, nil
}

type fakeApplicationRepo struct {
	createFn             func(ctx context.Context, app *model.Application) error
	findByJobAndSeekerFn func(ctx context.Context, jobID, jobSeekerID string) (*model.Application, error)
	findBySeekerFn       func(ctx context.Context, jobSeekerID string) ([]model.Application, error)
	findByJobFn          func(ctx context.Context, jobID string) ([]model.Application, error)
}

func (f *fakeApplicationRepo) Create(ctx context.Context, app *model.Application) error {
	if f.createFn != nil {
		return f.createFn(ctx, app)
	}
	return nil
}

func (f *fakeApplicationRepo) FindByJobAndSeeker(ctx context.Context, jobID, jobSeekerID string) (*model.Application, error) {
	if f.findByJobAndSeekerFn != nil {
		return f.findByJobAndSeekerFn(ctx, jobID, jobSeekerID)
	}
	return nil, nil
}

func (f *fakeApplicationRepo) FindBySeeker(ctx context.Context, jobSeekerID string) ([]model.Application, error) {
	if f.findBySeekerFn != nil {
		return f.findBySeekerFn(ctx, jobSeekerID)
	}
	return nil, nil
}

func (f *fakeApplicationRepo) FindByJob(ctx context.Context, jobID string) ([]model.Application, error) {
	if f.findByJobFn != nil {
		return f.findByJobFn(ctx, jobID)
	}
	return nil, nil
}

func strPtr(s string) *string { return &s }
