package model

import "time"

// Conventional application statuses. The column itself is free-form text.
const (
	ApplicationStatusPending  = "Pending"
	ApplicationStatusAccepted = "Accepted"
	ApplicationStatusRejected = "Rejected"
)

// Application records a user applying to a job. The (UserID, JobID) pair is the
// primary key, so a user can apply to a given job only once.
type Application struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	JobID uint `gorm:"primaryKey;autoIncrement:false" json:"jobId"`
	Job   Job  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`

	Status    string    `gorm:"type:text;not null" json:"status"`
	AppliedAt time.Time `gorm:"not null" json:"appliedAt"`
}

// NewApplication builds a pending application stamped with the current time.
func NewApplication(userID, jobID uint) Application {
	return Application{
		UserID:    userID,
		JobID:     jobID,
		Status:    ApplicationStatusPending,
		AppliedAt: time.Now().UTC(),
	}
}

// ApplicationView is the output projection of an application. Job fields are
// filled only when the Job association was preloaded.
type ApplicationView struct {
	UserID    uint      `json:"userId"`
	JobID     uint      `json:"jobId"`
	JobTitle  string    `json:"jobTitle,omitempty"`
	Company   string    `json:"company,omitempty"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"appliedAt"`
}

// ToView projects the application into its public representation.
func (a *Application) ToView() ApplicationView {
	return ApplicationView{
		UserID:    a.UserID,
		JobID:     a.JobID,
		JobTitle:  a.Job.Title,
		Company:   a.Job.Company,
		Status:    a.Status,
		AppliedAt: a.AppliedAt,
	}
}
