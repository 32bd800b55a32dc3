package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yana-hris/DevJobsAPI/internal/model"
)

// JobRepository is the persistence contract the job service depends on.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	FindAll(ctx context.Context) ([]model.Job, error)
	FindByID(ctx context.Context, id uint) (*model.Job, error)
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id uint) error
}

// GormJobRepository implements JobRepository on top of gorm.
type GormJobRepository struct {
	DB *gorm.DB
}

// NewJobRepository creates a new instance of GormJobRepository.
func NewJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{DB: db}
}

// Create inserts job and fills its generated ID.
func (r *GormJobRepository) Create(ctx context.Context, job *model.Job) error {
	return classify(r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(job).Error
	}))
}

// FindAll returns every job ordered by ID.
func (r *GormJobRepository) FindAll(ctx context.Context) ([]model.Job, error) {
	jobs := []model.Job{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&jobs).Error; err != nil {
		return nil, classify(err)
	}
	return jobs, nil
}

// FindByID returns the job with id, or nil without error when there is none.
func (r *GormJobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return &job, nil
}

// Update writes every column of job. ErrNotFound is returned when the row
// vanished in the meantime.
func (r *GormJobRepository) Update(ctx context.Context, job *model.Job) error {
	return classify(r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Job{}).
			Where("id = ?", job.ID).
			Select("title", "description", "company", "location",
				"min_experience", "max_experience",
				"work_mode", "job_type", "level", "salary", "employer_id").
			Updates(job)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}))
}

// Delete removes the job with id. Applications and saved jobs referencing it
// are removed by the store's ON DELETE CASCADE.
func (r *GormJobRepository) Delete(ctx context.Context, id uint) error {
	return classify(r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Job{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}))
}
