package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yana-hris/DevJobsAPI/internal/model"
)

// GormSavedJobRepository reads and writes job bookmarks.
type GormSavedJobRepository struct {
	DB *gorm.DB
}

// NewSavedJobRepository creates a new instance of GormSavedJobRepository.
func NewSavedJobRepository(db *gorm.DB) *GormSavedJobRepository {
	return &GormSavedJobRepository{DB: db}
}

// Create inserts saved. Saving the same job twice yields ErrConflict.
func (r *GormSavedJobRepository) Create(ctx context.Context, saved *model.SavedJob) error {
	return classify(r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(saved).Error
	}))
}

// Delete removes the bookmark for the (userID, jobID) pair.
func (r *GormSavedJobRepository) Delete(ctx context.Context, userID, jobID uint) error {
	return classify(r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&model.SavedJob{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}))
}

// FindJobsByUser returns the jobs a user saved, most recently saved first.
func (r *GormSavedJobRepository) FindJobsByUser(ctx context.Context, userID uint) ([]model.Job, error) {
	jobs := []model.Job{}
	err := r.DB.WithContext(ctx).
		Joins("JOIN saved_jobs ON saved_jobs.job_id = jobs.id").
		Where("saved_jobs.user_id = ?", userID).
		Order("saved_jobs.saved_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, classify(err)
	}
	return jobs, nil
}
