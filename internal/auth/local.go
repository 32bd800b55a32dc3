package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yana-hris/DevJobsAPI/internal/model"
	"github.com/yana-hris/DevJobsAPI/internal/repository"
	"github.com/yana-hris/DevJobsAPI/internal/utilities"
	"github.com/yana-hris/DevJobsAPI/internal/validation"
)

// UserStore is the user persistence the auth handlers need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	RoleByName(ctx context.Context, name string) (*model.Role, error)
	Create(ctx context.Context, user *model.User) error
}

// LocalAuthHandler serves email and password registration and login.
type LocalAuthHandler struct {
	Users  UserStore
	Tokens *TokenManager
	Log    *AuthLogger
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler.
func NewLocalAuthHandler(users UserStore, tokens *TokenManager, logger *AuthLogger) *LocalAuthHandler {
	return &LocalAuthHandler{
		Users:  users,
		Tokens: tokens,
		Log:    logger,
	}
}

type registerInfo struct {
	FullName string `json:"fullName" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=Employer Employee"`
}

// AuthResponse is returned by a successful registration or login.
type AuthResponse struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"accessToken"`
}

// LocalRegisterHandler creates an Employer or Employee account and logs it in.
// @Summary Register with full name, email and password
// @Description Email must not already exist and password must be at least 6 characters long
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body registerInfo true "role can be only 'Employer' or 'Employee'"
// @Success 201 {object} AuthResponse "Created user and its access token"
// @Failure 400 {object} validation.ErrorsResponse "Info provided not met the condition"
// @Failure 409 {object} utilities.ErrorResponse "Email already registered"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/register [post]
func (lh *LocalAuthHandler) LocalRegisterHandler(c *gin.Context) {
	var info registerInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, validation.ErrorsResponse{Errors: validation.BindError(err)})
		return
	}
	info.Email = strings.ToLower(strings.TrimSpace(info.Email))
	if errs := validation.ValidateStruct(info); errs != nil {
		c.JSON(http.StatusBadRequest, validation.ErrorsResponse{Errors: errs})
		return
	}

	ctx := c.Request.Context()
	role, err := lh.Users.RoleByName(ctx, info.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to load role: %s", err.Error()),
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed hash password: %s", err.Error()),
		})
		return
	}

	user := model.User{
		FullName:     info.FullName,
		Email:        info.Email,
		PasswordHash: hashedPassword,
		RoleID:       role.ID,
	}
	if err := lh.Users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			lh.Log.LogAuthAttempt("warning", "Local", "Fail", info.Email, "email already registered")
			c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create user: %s", err.Error()),
		})
		return
	}
	user.Role = *role

	accessToken, _, err := lh.Tokens.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	lh.Log.LogAuthAttempt("info", "Local", "Success", info.Email, "registered")
	c.JSON(http.StatusCreated, AuthResponse{User: user, AccessToken: accessToken})
}
