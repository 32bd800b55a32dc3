// Package admin provides HTTP handlers for user management by administrators.
package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yana-hris/DevJobsAPI/internal/model"
	"github.com/yana-hris/DevJobsAPI/internal/service"
	"github.com/yana-hris/DevJobsAPI/internal/utilities"
)

// UserService is what the handlers need from the user service.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

// AdminController handles admin only endpoints
type AdminController struct {
	Service UserService
}

// NewAdminController creates a new instance of AdminController.
func NewAdminController(svc UserService) *AdminController {
	return &AdminController{
		Service: svc,
	}
}

// GetUsers returns every registered user with their role.
// @Summary Get all users
// @Description Only admin can access this endpoint
// @Tags Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.User
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not logged in as admin"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/users [get]
func (ac *AdminController) GetUsers(c *gin.Context) {
	users, err := ac.Service.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser removes a user. Their jobs, applications and saved jobs go with them.
// @Summary Delete user
// @Description Only admin can access this endpoint, admins cannot delete themselves
// @Tags Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "User ID"
// @Success 200 {object} utilities.MessageResponse "User deleted successfully"
// @Failure 400 {object} utilities.ErrorResponse "Invalid user id or self deletion"
// @Failure 404 {object} utilities.ErrorResponse "User not found"
// @Router /admin/users/{id} [delete]
func (ac *AdminController) DeleteUser(c *gin.Context) {
	caller, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid user id"})
		return
	}
	if uint(id) == caller.ID {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Admins cannot delete themselves"})
		return
	}

	if err := ac.Service.DeleteUser(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "User deleted successfully"})
}
