package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobToView(t *testing.T) {
	job := NewJob()
	job.Title = "Backend Engineer"
	job.Description = "Build and run the services behind our public job board API."
	job.Company = "Acme"
	job.Location = "Remote"
	job.MinExperience = 5
	job.MaxExperience = 10
	job.WorkMode = WorkModeRemote
	job.JobType = JobTypeFullTime
	job.Level = LevelSenior
	job.Salary = 90000
	job.EmployerID = 1

	view := job.ToView()

	assert.Equal(t, JobView{
		Title:         "Backend Engineer",
		Description:   "Build and run the services behind our public job board API.",
		Company:       "Acme",
		Location:      "Remote",
		MinExperience: 5,
		MaxExperience: 10,
		WorkMode:      "Remote",
		JobType:       "FullTime",
		Level:         "Senior",
		Salary:        90000,
	}, view)
	assert.False(t, job.SavedAt.IsZero())
}

func TestJobValidExperienceRange(t *testing.T) {
	job := &Job{MinExperience: 3, MaxExperience: 2}
	assert.False(t, job.ValidExperienceRange())

	job.MaxExperience = 3
	assert.True(t, job.ValidExperienceRange())
}

func TestUserHasRole(t *testing.T) {
	u := User{Role: Role{Name: RoleEmployer}}
	assert.True(t, u.HasRole(RoleAdmin, RoleEmployer))
	assert.False(t, u.HasRole(RoleEmployee))
}

func TestNewApplicationDefaults(t *testing.T) {
	a := NewApplication(2, 7)
	assert.Equal(t, uint(2), a.UserID)
	assert.Equal(t, uint(7), a.JobID)
	assert.Equal(t, ApplicationStatusPending, a.Status)
	assert.False(t, a.AppliedAt.IsZero())
}
