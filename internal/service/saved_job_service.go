package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yana-hris/DevJobsAPI/internal/model"
	"github.com/yana-hris/DevJobsAPI/internal/repository"
)

// SavedJobStore is the persistence SavedJobService needs.
type SavedJobStore interface {
	Create(ctx context.Context, saved *model.SavedJob) error
	Delete(ctx context.Context, userID, jobID uint) error
	FindJobsByUser(ctx context.Context, userID uint) ([]model.Job, error)
}

// SavedJobService manages a user's bookmarked jobs.
type SavedJobService struct {
	saved SavedJobStore
	jobs  repository.JobRepository
}

// NewSavedJobService creates a new instance of SavedJobService.
func NewSavedJobService(saved SavedJobStore, jobs repository.JobRepository) *SavedJobService {
	return &SavedJobService{saved: saved, jobs: jobs}
}

// Save bookmarks jobID for userID.
func (s *SavedJobService) Save(ctx context.Context, userID, jobID uint) error {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("get job %d: %w", jobID, err)
	}
	if job == nil {
		return ErrNotFound
	}

	saved := model.NewSavedJob(userID, jobID)
	if err := s.saved.Create(ctx, &saved); err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return ErrAlreadyExists
		case errors.Is(err, repository.ErrMissingReference):
			return ErrNotFound
		}
		return fmt.Errorf("save job: %w", err)
	}
	return nil
}

// Unsave removes the bookmark of jobID for userID.
func (s *SavedJobService) Unsave(ctx context.Context, userID, jobID uint) error {
	if err := s.saved.Delete(ctx, userID, jobID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("unsave job: %w", err)
	}
	return nil
}

// List returns the jobs userID saved, most recent first.
func (s *SavedJobService) List(ctx context.Context, userID uint) ([]model.JobView, error) {
	jobs, err := s.saved.FindJobsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}
	views := make([]model.JobView, 0, len(jobs))
	for i := range jobs {
		views = append(views, jobs[i].ToView())
	}
	return views, nil
}
