package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yana-hris/DevJobsAPI/internal/model"
	"github.com/yana-hris/DevJobsAPI/internal/repository"
)

// ApplicationStore is the persistence ApplicationService needs.
type ApplicationStore interface {
	Create(ctx context.Context, app *model.Application) error
	Find(ctx context.Context, userID, jobID uint) (*model.Application, error)
	FindByUser(ctx context.Context, userID uint) ([]model.Application, error)
	FindByJob(ctx context.Context, jobID uint) ([]model.Application, error)
	UpdateStatus(ctx context.Context, userID, jobID uint, status string) error
}

// ApplicationService lets employees apply to jobs and employers review them.
type ApplicationService struct {
	apps ApplicationStore
	jobs repository.JobRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(apps ApplicationStore, jobs repository.JobRepository) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs}
}

// Apply records a pending application of user to jobID.
func (s *ApplicationService) Apply(ctx context.Context, user model.User, jobID uint) (model.ApplicationView, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return model.ApplicationView{}, fmt.Errorf("get job %d: %w", jobID, err)
	}
	if job == nil {
		return model.ApplicationView{}, ErrNotFound
	}

	app := model.NewApplication(user.ID, jobID)
	if err := s.apps.Create(ctx, &app); err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return model.ApplicationView{}, ErrAlreadyExists
		case errors.Is(err, repository.ErrMissingReference):
			// The job or the applicant was deleted after the lookup.
			return model.ApplicationView{}, ErrNotFound
		}
		return model.ApplicationView{}, fmt.Errorf("create application: %w", err)
	}
	app.Job = *job
	return app.ToView(), nil
}

// ListForUser returns the applications submitted by userID, newest first.
func (s *ApplicationService) ListForUser(ctx context.Context, userID uint) ([]model.ApplicationView, error) {
	apps, err := s.apps.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return toApplicationViews(apps), nil
}

// ListForJob returns the applications a job received. Only the job's employer
// or an admin may list them.
func (s *ApplicationService) ListForJob(ctx context.Context, caller model.User, jobID uint) ([]model.ApplicationView, error) {
	if _, err := s.ownedJob(ctx, caller, jobID); err != nil {
		return nil, err
	}
	apps, err := s.apps.FindByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return toApplicationViews(apps), nil
}

// UpdateStatus sets the status of the application of userID to jobID and
// returns the application as stored.
func (s *ApplicationService) UpdateStatus(ctx context.Context, caller model.User, userID, jobID uint, status string) (model.ApplicationView, error) {
	if _, err := s.ownedJob(ctx, caller, jobID); err != nil {
		return model.ApplicationView{}, err
	}
	if err := s.apps.UpdateStatus(ctx, userID, jobID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ApplicationView{}, ErrNotFound
		}
		return model.ApplicationView{}, fmt.Errorf("update application: %w", err)
	}
	app, err := s.apps.Find(ctx, userID, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ApplicationView{}, ErrNotFound
		}
		return model.ApplicationView{}, fmt.Errorf("get application: %w", err)
	}
	return app.ToView(), nil
}

func (s *ApplicationService) ownedJob(ctx context.Context, caller model.User, jobID uint) (*model.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job %d: %w", jobID, err)
	}
	if job == nil {
		return nil, ErrNotFound
	}
	if !caller.HasRole(model.RoleAdmin) && job.EmployerID != caller.ID {
		return nil, ErrForbidden
	}
	return job, nil
}

func toApplicationViews(apps []model.Application) []model.ApplicationView {
	views := make([]model.ApplicationView, 0, len(apps))
	for i := range apps {
		views = append(views, apps[i].ToView())
	}
	return views
}
