package utilities

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yana-hris/DevJobsAPI/internal/model"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", hash)
	assert.True(t, VerifyPassword("password123", hash))
	assert.False(t, VerifyPassword("password124", hash))
}

func newContext(header string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken(newContext("Bearer abc.def.ghi"))
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken(newContext(""))
	assert.EqualError(t, err, "Invalid authorization header")

	_, err = ExtractBearerToken(newContext("Basic dXNlcjpwYXNz"))
	assert.Error(t, err)
}

func TestExtractUser(t *testing.T) {
	c := newContext("")
	_, err := ExtractUser(c)
	assert.Error(t, err)

	c.Set("user", "not a user")
	_, err = ExtractUser(c)
	assert.ErrorIs(t, err, ErrUserType)

	c.Set("user", model.User{ID: 4, Email: "x@example.com"})
	user, err := ExtractUser(c)
	require.NoError(t, err)
	assert.Equal(t, uint(4), user.ID)
}
