package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yana-hris/DevJobsAPI/internal/model"
	"github.com/yana-hris/DevJobsAPI/internal/repository"
)

// JobService implements the job lifecycle on top of a JobRepository.
type JobService struct {
	repo repository.JobRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(repo repository.JobRepository) *JobService {
	return &JobService{repo: repo}
}

// Add creates a job from form and returns its ID. WorkMode and Level default to
// OnSite and Junior. Nothing is stored when an enum code is undefined.
func (s *JobService) Add(ctx context.Context, form model.JobForm) (uint, error) {
	job := model.NewJob()
	if err := applyForm(job, form); err != nil {
		return 0, err
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return 0, fmt.Errorf("create job: %w", err)
	}
	return job.ID, nil
}

// GetAll returns every job ordered by ID.
func (s *JobService) GetAll(ctx context.Context) ([]model.JobView, error) {
	jobs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	views := make([]model.JobView, 0, len(jobs))
	for i := range jobs {
		views = append(views, jobs[i].ToView())
	}
	return views, nil
}

// GetByID returns the job with id, or nil without error when it does not exist.
func (s *JobService) GetByID(ctx context.Context, id uint) (*model.JobView, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job %d: %w", id, err)
	}
	if job == nil {
		return nil, nil
	}
	view := job.ToView()
	return &view, nil
}

// Update overwrites every mutable field of the job identified by form.ID.
func (s *JobService) Update(ctx context.Context, form model.JobForm) error {
	job, err := s.repo.FindByID(ctx, form.ID)
	if err != nil {
		return fmt.Errorf("get job %d: %w", form.ID, err)
	}
	if job == nil {
		return ErrNotFound
	}
	if err := applyForm(job, form); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, job); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update job %d: %w", form.ID, err)
	}
	return nil
}

// Delete removes the job with id together with its applications and saved entries.
func (s *JobService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete job %d: %w", id, err)
	}
	return nil
}

func applyForm(job *model.Job, form model.JobForm) error {
	jobType, err := model.ParseJobType(form.JobType)
	if err != nil {
		return err
	}

	workMode := model.WorkModeOnSite
	if form.WorkMode != nil {
		if workMode, err = model.ParseWorkMode(*form.WorkMode); err != nil {
			return err
		}
	}

	level := model.LevelJunior
	if form.Level != nil {
		if level, err = model.ParseLevel(*form.Level); err != nil {
			return err
		}
	}

	job.Title = form.Title
	job.Description = form.Description
	job.Company = form.Company
	job.Location = form.Location
	job.MinExperience = form.MinExperience
	job.MaxExperience = form.MaxExperience
	job.WorkMode = workMode
	job.JobType = jobType
	job.Level = level
	job.Salary = form.Salary
	job.EmployerID = form.EmployerID
	return nil
}
