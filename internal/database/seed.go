package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/yana-hris/DevJobsAPI/internal/model"
	"github.com/yana-hris/DevJobsAPI/internal/utilities"
)

// SeedOptions controls which optional rows Seed inserts besides the roles.
type SeedOptions struct {
	SampleUsers   bool
	AdminEmail    string
	AdminPassword string
}

var sampleUsers = []struct {
	fullName string
	email    string
	password string
	role     string
}{
	{"Alice Johnson", "alice@example.com", "password123", model.RoleEmployer},
	{"Bob Smith", "bob@example.com", "password456", model.RoleEmployee},
	{"Charlie Admin", "charlie@example.com", "adminpass", model.RoleAdmin},
}

// Seed inserts reference data. Running it again against a seeded store is a no-op.
func Seed(db *gorm.DB, opts SeedOptions) error {
	if err := SeedRoles(db); err != nil {
		return err
	}

	if opts.SampleUsers {
		for _, s := range sampleUsers {
			if _, err := EnsureUser(db, s.fullName, s.email, s.password, s.role); err != nil {
				return err
			}
		}
	}

	if opts.AdminEmail == "" || opts.AdminPassword == "" {
		log.Println("Admin email or password not set, skipping admin creation")
		return nil
	}

	var count int64
	if err := db.Model(&model.User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", model.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := EnsureUser(db, "Administrator", opts.AdminEmail, opts.AdminPassword, model.RoleAdmin)
	return err
}

// SeedRoles makes sure the fixed Employer, Employee and Admin roles exist.
func SeedRoles(db *gorm.DB) error {
	for _, name := range model.DefaultRoleNames {
		role := model.Role{}
		if err := db.Where(model.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}

// EnsureUser returns the user with email, creating it with the given role and
// a bcrypt hash of password when it does not exist yet.
func EnsureUser(db *gorm.DB, fullName, email, password, roleName string) (model.User, error) {
	var user model.User
	err := db.Preload("Role").Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		return user, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return user, err
	}

	var role model.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		return user, fmt.Errorf("role %s: %w", roleName, err)
	}

	hashed, err := utilities.HashPassword(password)
	if err != nil {
		return user, fmt.Errorf("failed to hash password: %w", err)
	}

	user = model.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hashed,
		RoleID:       role.ID,
	}
	if err := db.Omit("Role").Create(&user).Error; err != nil {
		return user, err
	}
	user.Role = role
	return user, nil
}
