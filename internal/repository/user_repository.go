package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yana-hris/DevJobsAPI/internal/model"
)

// GormUserRepository reads and writes users and roles.
type GormUserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates a new instance of GormUserRepository.
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{DB: db}
}

// FindByID returns the user with its role preloaded.
func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).Preload("Role").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// FindByEmail returns the user with its role preloaded.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// FindAll returns every user ordered by ID.
func (r *GormUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := r.DB.WithContext(ctx).Preload("Role").Order("id ASC").Find(&users).Error; err != nil {
		return nil, classify(err)
	}
	return users, nil
}

// RoleByName looks up one of the seeded roles.
func (r *GormUserRepository) RoleByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, classify(err)
	}
	return &role, nil
}

// Create inserts user. A taken email yields ErrConflict.
func (r *GormUserRepository) Create(ctx context.Context, user *model.User) error {
	return classify(r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(user).Error
	}))
}

// Delete removes the user; their jobs, applications and saved jobs cascade.
func (r *GormUserRepository) Delete(ctx context.Context, id uint) error {
	return classify(r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}))
}
