// Package utilities holds response envelopes and request helpers shared by
// the handlers and middleware.
package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yana-hris/DevJobsAPI/internal/model"
)

// ErrorResponse is the envelope for authentication and middleware failures
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the envelope for plain outcome messages
type MessageResponse struct {
	Message string `json:"message"`
}

// Errors returned by ExtractUser. RequireAuth must run before any handler
// that calls it.
var (
	ErrNoUser   = errors.New("User information not provided")
	ErrUserType = errors.New("Failed to assert type")
)

// ExtractUser returns the user RequireAuth stored under the "user" key.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, exists := c.Get("user")
	if !exists || u == nil {
		return model.User{}, ErrNoUser
	}
	user, ok := u.(model.User)
	if !ok {
		return model.User{}, ErrUserType
	}
	return user, nil
}
