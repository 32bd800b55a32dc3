package model

// Role names seeded at initialization.
const (
	RoleEmployer = "Employer"
	RoleEmployee = "Employee"
	RoleAdmin    = "Admin"
)

// DefaultRoleNames lists the fixed roles in seeding order.
var DefaultRoleNames = []string{RoleEmployer, RoleEmployee, RoleAdmin}

// Role is gorm model for an authorization role. Deleting a role removes its users.
type Role struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	Users []User `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"-"`
}
