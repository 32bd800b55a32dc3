package testutil

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yana-hris/DevJobsAPI/internal/auth"
	"github.com/yana-hris/DevJobsAPI/internal/database"
	"github.com/yana-hris/DevJobsAPI/internal/middleware"
	"github.com/yana-hris/DevJobsAPI/internal/model"
	"github.com/yana-hris/DevJobsAPI/internal/repository"
)

// Env is a seeded in-memory database plus the auth pieces handlers need.
type Env struct {
	DB     *database.DBinstanceStruct
	Tokens *auth.TokenManager
	Users  *repository.GormUserRepository
	Login  *auth.LocalAuthHandler
}

// NewEnv opens a private SQLite database named after the test and seeds it
// with database.SeedTestData.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	db, err := database.NewSQLiteInstance(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedTestData(db))

	tokens := auth.NewTokenManager("test-secret", "DevJobsAPI", time.Hour)
	users := repository.NewUserRepository(db.DB)
	return &Env{
		DB:     db,
		Tokens: tokens,
		Users:  users,
		Login:  auth.NewLocalAuthHandler(users, tokens, auth.NewAuthLogger(false)),
	}
}

// Token logs user in with the shared seed password and returns the access token.
func (e *Env) Token(t *testing.T, user model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, e.Login, user.Email, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

// Protect returns RequireAuth followed by CheckRole when roles are given.
func (e *Env) Protect(roles ...string) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{middleware.RequireAuth(e.Tokens, e.Users)}
	if len(roles) > 0 {
		chain = append(chain, middleware.CheckRole(roles...))
	}
	return chain
}
