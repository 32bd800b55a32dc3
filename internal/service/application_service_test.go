package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yana-hris/DevJobsAPI/internal/database"
	"github.com/yana-hris/DevJobsAPI/internal/model"
	"github.com/yana-hris/DevJobsAPI/internal/repository"
)

func newApplicationService(db *database.DBinstanceStruct) *ApplicationService {
	return NewApplicationService(
		repository.NewApplicationRepository(db.DB),
		repository.NewJobRepository(db.DB),
	)
}

func TestApplicationServiceApply(t *testing.T) {
	db := newSeededDB(t)
	svc := newApplicationService(db)
	ctx := context.Background()

	view, err := svc.Apply(ctx, database.TestEmployee1, database.TestJob1.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusPending, view.Status)
	assert.Equal(t, database.TestJob1.Title, view.JobTitle)

	_, err = svc.Apply(ctx, database.TestEmployee1, database.TestJob1.ID)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = svc.Apply(ctx, database.TestEmployee1, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	mine, err := svc.ListForUser(ctx, database.TestEmployee1.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

// staleJobs reports a job that is no longer in the store, as if it was
// deleted between the lookup and the insert.
type staleJobs struct {
	repository.JobRepository
}

func (staleJobs) FindByID(_ context.Context, id uint) (*model.Job, error) {
	job := model.NewJob()
	job.ID = id
	return job, nil
}

func TestApplicationServiceApplyToDeletedJob(t *testing.T) {
	db := newSeededDB(t)
	svc := NewApplicationService(repository.NewApplicationRepository(db.DB), staleJobs{})

	_, err := svc.Apply(context.Background(), database.TestEmployee1, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
}

func TestApplicationServiceUpdateStatus(t *testing.T) {
	db := newSeededDB(t)
	svc := newApplicationService(db)
	ctx := context.Background()

	_, err := svc.Apply(ctx, database.TestEmployee2, database.TestJob3.ID)
	require.NoError(t, err)

	// TestJob3 belongs to the second employer.
	_, err = svc.UpdateStatus(ctx, database.TestEmployer1, database.TestEmployee2.ID, database.TestJob3.ID, model.ApplicationStatusAccepted)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateStatus(ctx, database.TestEmployer2, database.TestEmployee2.ID, database.TestJob3.ID, model.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusAccepted, updated.Status)
	assert.Equal(t, database.TestJob3.Title, updated.JobTitle)

	_, err = svc.UpdateStatus(ctx, database.TestAdminUser, database.TestEmployee2.ID, database.TestJob3.ID, model.ApplicationStatusRejected)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, database.TestEmployer2, database.TestEmployee1.ID, database.TestJob3.ID, model.ApplicationStatusRejected)
	assert.ErrorIs(t, err, ErrNotFound)

	received, err := svc.ListForJob(ctx, database.TestEmployer2, database.TestJob3.ID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, model.ApplicationStatusRejected, received[0].Status)

	_, err = svc.ListForJob(ctx, database.TestEmployee1, database.TestJob3.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}
