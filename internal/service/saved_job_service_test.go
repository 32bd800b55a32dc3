package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yana-hris/DevJobsAPI/internal/database"
	"github.com/yana-hris/DevJobsAPI/internal/repository"
)

func TestSavedJobService(t *testing.T) {
	db := newSeededDB(t)
	svc := NewSavedJobService(repository.NewSavedJobRepository(db.DB), repository.NewJobRepository(db.DB))
	ctx := context.Background()
	userID := database.TestEmployee1.ID

	require.NoError(t, svc.Save(ctx, userID, database.TestJob2.ID))
	assert.ErrorIs(t, svc.Save(ctx, userID, database.TestJob2.ID), ErrAlreadyExists)
	assert.ErrorIs(t, svc.Save(ctx, userID, 9999), ErrNotFound)

	views, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Frontend Developer Intern", views[0].Title)
	assert.Equal(t, "Internship", views[0].JobType)

	require.NoError(t, svc.Unsave(ctx, userID, database.TestJob2.ID))
	assert.ErrorIs(t, svc.Unsave(ctx, userID, database.TestJob2.ID), ErrNotFound)

	views, err = svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestUserService(t *testing.T) {
	db := newSeededDB(t)
	svc := NewUserService(repository.NewUserRepository(db.DB))
	ctx := context.Background()

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)

	require.NoError(t, svc.DeleteUser(ctx, database.TestEmployee2.ID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, database.TestEmployee2.ID), ErrNotFound)
}
