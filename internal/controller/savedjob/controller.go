// Package savedjob provides HTTP handlers for bookmarking jobs.
package savedjob

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

// SavedJobService is what the handlers need from the saved job service.
type SavedJobService interface {
	Save(ctx context.Context, userID, jobID uint) error
	Unsave(ctx context.Context, userID, jobID uint) error
	List(ctx context.Context, userID uint) ([]model.JobView, error)
}

// SavedJobController handles saved job endpoints
type SavedJobController struct {
	Service SavedJobService
}

// NewSavedJobController creates a new instance of SavedJobController.
func NewSavedJobController(svc SavedJobService) *SavedJobController {
	return &SavedJobController{Service: svc}
}

// SaveJob bookmarks a job for the caller.
// @Summary Save a job
// @Tags SavedJob
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param jobId path int true "Job ID"
// @Success 201 {object} utilities.MessageResponse "Job saved"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 409 {object} utilities.ErrorResponse "Job already saved"
// @Router /saved-jobs/{jobId} [post]
func (sc *SavedJobController) SaveJob(c *gin.Context) {
	user, jobID, ok := userAndJob(c)
	if !ok {
		return
	}

	err := sc.Service.Save(c.Request.Context(), user.ID, jobID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
	case errors.Is(err, service.ErrAlreadyExists):
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "Job already saved"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to save job: %s", err.Error()),
		})
	default:
		c.JSON(http.StatusCreated, utilities.MessageResponse{Message: "Job saved"})
	}
}

// UnsaveJob removes a bookmark of the caller.
// @Summary Remove a saved job
// @Tags SavedJob
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param jobId path int true "Job ID"
// @Success 200 {object} utilities.MessageResponse "Job removed from saved jobs"
// @Failure 404 {object} utilities.ErrorResponse "Saved job not found"
// @Router /saved-jobs/{jobId} [delete]
func (sc *SavedJobController) UnsaveJob(c *gin.Context) {
	user, jobID, ok := userAndJob(c)
	if !ok {
		return
	}

	err := sc.Service.Unsave(c.Request.Context(), user.ID, jobID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Saved job not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to remove saved job: %s", err.Error()),
		})
	default:
		c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job removed from saved jobs"})
	}
}

// GetSavedJobs lists the caller's saved jobs.
// @Summary Get my saved jobs
// @Tags SavedJob
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.JobView
// @Router /saved-jobs [get]
func (sc *SavedJobController) GetSavedJobs(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	jobs, err := sc.Service.List(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func userAndJob(c *gin.Context) (model.User, uint, bool) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return user, 0, false
	}
	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid job id"})
		return user, 0, false
	}
	return user, uint(jobID), true
}
