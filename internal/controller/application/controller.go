// Package application provides HTTP handlers for job application operations.
package application

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
	"github.com/yana-hris/DevJobsAPI/internal/validation"
)

// ApplicationService is what the handlers need from the application service.
type ApplicationService interface {
	Apply(ctx context.Context, user model.User, jobID uint) (model.ApplicationView, error)
	ListForUser(ctx context.Context, userID uint) ([]model.ApplicationView, error)
	ListForJob(ctx context.Context, caller model.User, jobID uint) ([]model.ApplicationView, error)
	UpdateStatus(ctx context.Context, caller model.User, userID, jobID uint, status string) (model.ApplicationView, error)
}

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	Service ApplicationService
}

// NewApplicationController creates a new instance of ApplicationController.
func NewApplicationController(svc ApplicationService) *ApplicationController {
	return &ApplicationController{
		Service: svc,
	}
}

// StatusUpdatedResponse carries the application after a status change.
type StatusUpdatedResponse struct {
	Message     string                `json:"message"`
	Application model.ApplicationView `json:"application"`
}

type applyInfo struct {
	JobID uint `json:"jobId" validate:"required"`
}

type statusInfo struct {
	Status string `json:"status" validate:"required,oneof=Pending Accepted Rejected"`
}

// ApplicationHandler handles the creation of a new job application by an employee.
// @Summary Apply to a job
// @Description Only employees can access this endpoint
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param application body applyInfo true "Job to apply to"
// @Success 201 {object} model.ApplicationView "Successfully applied"
// @Failure 400 {object} validation.ErrorsResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employee"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 409 {object} utilities.ErrorResponse "Already applied"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications [post]
func (ac *ApplicationController) ApplicationHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info applyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, validation.ErrorsResponse{Errors: validation.BindError(err)})
		return
	}
	if errs := validation.ValidateStruct(info); errs != nil {
		c.JSON(http.StatusBadRequest, validation.ErrorsResponse{Errors: errs})
		return
	}

	view, err := ac.Service.Apply(c.Request.Context(), user, info.JobID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		return
	case errors.Is(err, service.ErrAlreadyExists):
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "You have already applied to this job"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, view)
}

// GetMyApplications lists the caller's applications.
// @Summary Get my applications
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.ApplicationView
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/me [get]
func (ac *ApplicationController) GetMyApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	apps, err := ac.Service.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// GetJobApplications lists the applications received by a job.
// @Summary Get applications of a job
// @Description Only the employer who posted the job or an admin can access this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Job ID"
// @Success 200 {array} model.ApplicationView
// @Failure 403 {object} utilities.ErrorResponse "Not the job owner"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id}/applications [get]
func (ac *ApplicationController) GetJobApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	jobID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	apps, err := ac.Service.ListForJob(c.Request.Context(), user, jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateApplicationStatus sets the status of one application to a job.
// @Summary Update application status
// @Description Only the employer who posted the job or an admin can access this endpoint
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Job ID"
// @Param userId path int true "Applicant user ID"
// @Param status body statusInfo true "Pending, Accepted or Rejected"
// @Success 200 {object} StatusUpdatedResponse "Application status updated"
// @Failure 400 {object} validation.ErrorsResponse "Invalid status"
// @Failure 403 {object} utilities.ErrorResponse "Not the job owner"
// @Failure 404 {object} utilities.ErrorResponse "Job or application not found"
// @Router /jobs/{id}/applications/{userId} [patch]
func (ac *ApplicationController) UpdateApplicationStatus(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	jobID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	applicantID, ok := uintParam(c, "userId")
	if !ok {
		return
	}

	var info statusInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, validation.ErrorsResponse{Errors: validation.BindError(err)})
		return
	}
	if errs := validation.ValidateStruct(info); errs != nil {
		c.JSON(http.StatusBadRequest, validation.ErrorsResponse{Errors: errs})
		return
	}

	view, err := ac.Service.UpdateStatus(c.Request.Context(), user, applicantID, jobID, info.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusUpdatedResponse{Message: "Application status updated", Application: view})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job or application not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "Only the employer who posted the job can manage its applications"})
	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
	}
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 63)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: fmt.Sprintf("Invalid %s", name)})
		return 0, false
	}
	return uint(v), true
}
