package model

import "time"

// SavedJob is a bookmark of a job by a user, keyed by (UserID, JobID).
type SavedJob struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	JobID uint `gorm:"primaryKey;autoIncrement:false" json:"jobId"`
	Job   Job  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`

	SavedAt time.Time `gorm:"not null" json:"savedAt"`
}

// NewSavedJob builds a bookmark stamped with the current time.
func NewSavedJob(userID, jobID uint) SavedJob {
	return SavedJob{
		UserID:  userID,
		JobID:   jobID,
		SavedAt: time.Now().UTC(),
	}
}
