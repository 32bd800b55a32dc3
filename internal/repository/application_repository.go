package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yana-hris/DevJobsAPI/internal/model"
)

// GormApplicationRepository reads and writes job applications.
type GormApplicationRepository struct {
	DB *gorm.DB
}

// NewApplicationRepository creates a new instance of GormApplicationRepository.
func NewApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{DB: db}
}

// Create inserts app. A second application for the same pair yields ErrConflict.
func (r *GormApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	return classify(r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(app).Error
	}))
}

// Find returns the application for the (userID, jobID) pair with its job.
func (r *GormApplicationRepository) Find(ctx context.Context, userID, jobID uint) (*model.Application, error) {
	var app model.Application
	err := r.DB.WithContext(ctx).
		Preload("Job").
		Where("user_id = ? AND job_id = ?", userID, jobID).
		First(&app).Error
	if err != nil {
		return nil, classify(err)
	}
	return &app, nil
}

// FindByUser lists a user's applications, newest first.
func (r *GormApplicationRepository) FindByUser(ctx context.Context, userID uint) ([]model.Application, error) {
	apps := []model.Application{}
	err := r.DB.WithContext(ctx).
		Preload("Job").
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, classify(err)
	}
	return apps, nil
}

// FindByJob lists the applications received by a job, oldest first.
func (r *GormApplicationRepository) FindByJob(ctx context.Context, jobID uint) ([]model.Application, error) {
	apps := []model.Application{}
	err := r.DB.WithContext(ctx).
		Preload("Job").
		Where("job_id = ?", jobID).
		Order("applied_at ASC").
		Find(&apps).Error
	if err != nil {
		return nil, classify(err)
	}
	return apps, nil
}

// UpdateStatus sets the status of one application.
func (r *GormApplicationRepository) UpdateStatus(ctx context.Context, userID, jobID uint, status string) error {
	return classify(r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Application{}).
			Where("user_id = ? AND job_id = ?", userID, jobID).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}))
}
