package model

// User is gorm model for an account. Email is the login identifier and is
// unique. PasswordHash always holds a bcrypt hash.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName     string `gorm:"type:varchar(100);not null" json:"fullName"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`

	RoleID uint `gorm:"not null;index" json:"roleId"`
	Role   Role `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"role"`

	Applications []Application `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	SavedJobs    []SavedJob    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Jobs         []Job         `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE" json:"-"`
}

// HasRole reports whether the user's loaded role is one of roles.
func (u User) HasRole(roles ...string) bool {
	for _, r := range roles {
		if u.Role.Name == r {
			return true
		}
	}
	return false
}
