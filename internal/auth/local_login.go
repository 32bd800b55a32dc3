package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yana-hris/DevJobsAPI/internal/repository"
	"github.com/yana-hris/DevJobsAPI/internal/utilities"
)

type loginInfo struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LocalLoginHandler function handles local login by receiving email and password
// do nothing if email does not exist in the database
// do nothing if password is incorrect
// @Summary Handles local login by receiving email and password
// @Description Email must exist and password match
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} AuthResponse "Logged in user and its access token"
// @Failure 400 {object} utilities.ErrorResponse "Email or password is not provided"
// @Failure 401 {object} utilities.ErrorResponse "Email not exist or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database or token signing error"
// @Router /auth/login [post]
func (lh *LocalAuthHandler) LocalLoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Email or password is not provided",
		})
		return
	}
	email := strings.ToLower(strings.TrimSpace(info.Email))

	user, err := lh.Users.FindByEmail(c.Request.Context(), email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		lh.Log.LogAuthAttempt("warning", "Local", "Fail", email, "unknown email")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Email or password is incorrect",
		})
		return

	case err == nil:
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	if user.PasswordHash == "" || !utilities.VerifyPassword(info.Password, user.PasswordHash) {
		lh.Log.LogAuthAttempt("warning", "Local", "Fail", email, "wrong password")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Email or password is incorrect",
		})
		return
	}

	accessToken, _, err := lh.Tokens.GenerateToken(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	lh.Log.LogAuthAttempt("info", "Local", "Success", email, "")
	c.JSON(http.StatusOK, AuthResponse{User: *user, AccessToken: accessToken})
}
