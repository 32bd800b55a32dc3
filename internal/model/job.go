package model

import "time"

// Job is gorm model for a job posting. Enum columns are stored by code and
// guarded by check constraints so a bad code never reaches the table.
type Job struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"type:varchar(150);not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Company     string `gorm:"type:varchar(100);not null" json:"company"`
	Location    string `gorm:"type:varchar(100);not null" json:"location"`

	MinExperience int `gorm:"not null;default:0" json:"minExperience"`
	MaxExperience int `gorm:"not null;default:0" json:"maxExperience"`

	WorkMode WorkMode `gorm:"not null;check:chk_jobs_work_mode,work_mode BETWEEN 1 AND 3" json:"workMode"`
	JobType  JobType  `gorm:"not null;check:chk_jobs_job_type,job_type BETWEEN 1 AND 6" json:"jobType"`
	Level    Level    `gorm:"not null;check:chk_jobs_level,level BETWEEN 1 AND 3" json:"level"`

	Salary float64 `gorm:"type:decimal(18,2);not null" json:"salary"`

	EmployerID uint `gorm:"not null;index" json:"employerId"`
	Employer   User `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE" json:"-"`

	SavedAt time.Time `gorm:"not null" json:"savedAt"`

	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	SavedJobs    []SavedJob    `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}

// NewJob returns an empty job stamped with its creation time.
func NewJob() *Job {
	return &Job{SavedAt: time.Now().UTC()}
}

// ValidExperienceRange reports whether MinExperience <= MaxExperience.
// It is advisory and not enforced on write.
func (j *Job) ValidExperienceRange() bool {
	return j.MinExperience <= j.MaxExperience
}

// ToView projects the job into its public representation.
func (j *Job) ToView() JobView {
	return JobView{
		Title:         j.Title,
		Description:   j.Description,
		Company:       j.Company,
		Location:      j.Location,
		MinExperience: j.MinExperience,
		MaxExperience: j.MaxExperience,
		WorkMode:      j.WorkMode.String(),
		JobType:       j.JobType.String(),
		Level:         j.Level.String(),
		Salary:        j.Salary,
	}
}

// JobForm is the client-submitted representation of a job. Enum fields carry
// numeric codes; WorkMode and Level are optional.
type JobForm struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title" validate:"required,min=5,max=150"`
	Description   string  `json:"description" validate:"required,min=50"`
	Company       string  `json:"company" validate:"max=100"`
	Location      string  `json:"location" validate:"required,max=100"`
	MinExperience int     `json:"minExperience" validate:"gte=0,lte=50"`
	MaxExperience int     `json:"maxExperience" validate:"gte=0,lte=50"`
	WorkMode      *int    `json:"workMode" validate:"omitempty,gte=1,lte=3"`
	JobType       int     `json:"jobType" validate:"required,gte=1,lte=6"`
	Level         *int    `json:"level" validate:"omitempty,gte=1,lte=3"`
	Salary        float64 `json:"salary" validate:"gte=0"`
	EmployerID    uint    `json:"employerId" validate:"required"`
}

// JobView is the output projection of a job with enums rendered as names.
type JobView struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Company       string  `json:"company"`
	Location      string  `json:"location"`
	MinExperience int     `json:"minExperience"`
	MaxExperience int     `json:"maxExperience"`
	WorkMode      string  `json:"workMode"`
	JobType       string  `json:"jobType"`
	Level         string  `json:"level"`
	Salary        float64 `json:"salary"`
}
