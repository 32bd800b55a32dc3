// Package job provides HTTP handlers for job posting operations.
package job

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yana-hris/DevJobsAPI/internal/model"
	"github.com/yana-hris/DevJobsAPI/internal/service"
	"github.com/yana-hris/DevJobsAPI/internal/utilities"
	"github.com/yana-hris/DevJobsAPI/internal/validation"
)

// JobService is the job lifecycle the handlers delegate to.
type JobService interface {
	Add(ctx context.Context, form model.JobForm) (uint, error)
	GetAll(ctx context.Context) ([]model.JobView, error)
	GetByID(ctx context.Context, id uint) (*model.JobView, error)
	Update(ctx context.Context, form model.JobForm) error
	Delete(ctx context.Context, id uint) error
}

// JobController handles job related endpoints
type JobController struct {
	Service JobService
}

// NewJobController creates a new instance of JobController
func NewJobController(svc JobService) *JobController {
	return &JobController{
		Service: svc,
	}
}

// CreatedJobResponse is the body of a successful job creation.
type CreatedJobResponse struct {
	ID uint `json:"id"`
	model.JobView
}

// GetJobs returns every job posting.
// @Summary Get all jobs
// @Tags Job
// @Produce json
// @Success 200 {array} model.JobView "Every job with enums rendered as names"
// @Failure 500 {object} utilities.MessageResponse "Database error"
// @Router /jobs [get]
func (jc *JobController) GetJobs(c *gin.Context) {
	jobs, err := jc.Service.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list jobs: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.MessageResponse{Message: "Error retrieving jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob returns a single job posting.
// @Summary Get job by ID
// @Tags Job
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} model.JobView "Requested job"
// @Failure 400 {object} utilities.MessageResponse "Invalid job id"
// @Failure 404 {object} utilities.MessageResponse "Job with id {id} not found"
// @Failure 500 {object} utilities.MessageResponse "Database error"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	job, err := jc.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("Failed to get job %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, utilities.MessageResponse{Message: "Error retrieving job"})
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, utilities.MessageResponse{Message: fmt.Sprintf("Job with id %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob creates a job posting from the request body.
// @Summary Create job based on given json structure
// @Description workMode and level are optional and default to OnSite and Junior
// @Tags Job
// @Accept json
// @Produce json
// @Param Job body model.JobForm true "Input job information"
// @Success 201 {object} CreatedJobResponse "Created job, Location header points to it"
// @Failure 400 {object} validation.ErrorsResponse "Invalid job form"
// @Failure 400 {object} utilities.MessageResponse "Error creating job"
// @Router /jobs [post]
func (jc *JobController) CreateJob(c *gin.Context) {
	var form model.JobForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, validation.ErrorsResponse{Errors: validation.BindError(err)})
		return
	}
	if errs := validation.ValidateJobForm(form); errs != nil {
		c.JSON(http.StatusBadRequest, validation.ErrorsResponse{Errors: errs})
		return
	}

	ctx := c.Request.Context()
	id, err := jc.Service.Add(ctx, form)
	if err != nil {
		log.Printf("Failed to create job: %v", err)
		c.JSON(http.StatusBadRequest, utilities.MessageResponse{Message: "Error creating job"})
		return
	}

	c.Header("Location", fmt.Sprintf("/jobs/%d", id))
	resp := CreatedJobResponse{ID: id}
	view, err := jc.Service.GetByID(ctx, id)
	switch {
	case err != nil:
		log.Printf("Failed to load created job %d: %v", id, err)
	case view != nil:
		resp.JobView = *view
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateJob overwrites a job posting. The body ID must match the path ID.
// @Summary Update job
// @Tags Job
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param Job body model.JobForm true "Full job information including id"
// @Success 200 {object} utilities.MessageResponse "Job updated successfully"
// @Failure 400 {object} utilities.MessageResponse "Job ID mismatch or Error updating job"
// @Failure 400 {object} validation.ErrorsResponse "Invalid job form"
// @Failure 404 {object} utilities.MessageResponse "Job not found"
// @Router /jobs/{id} [put]
func (jc *JobController) UpdateJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form model.JobForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, validation.ErrorsResponse{Errors: validation.BindError(err)})
		return
	}
	if form.ID != id {
		c.JSON(http.StatusBadRequest, utilities.MessageResponse{Message: "Job ID mismatch"})
		return
	}
	if errs := validation.ValidateJobForm(form); errs != nil {
		c.JSON(http.StatusBadRequest, validation.ErrorsResponse{Errors: errs})
		return
	}

	if err := jc.Service.Update(c.Request.Context(), form); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.MessageResponse{Message: "Job not found"})
			return
		}
		log.Printf("Failed to update job %d: %v", id, err)
		c.JSON(http.StatusBadRequest, utilities.MessageResponse{Message: "Error updating job"})
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job updated successfully"})
}

// DeleteJob removes a job posting together with its applications and saved entries.
// @Summary Delete job
// @Tags Job
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} utilities.MessageResponse "Job deleted successfully"
// @Failure 400 {object} utilities.MessageResponse "Error deleting job"
// @Failure 404 {object} utilities.MessageResponse "Job with id {id} not found"
// @Router /jobs/{id} [delete]
func (jc *JobController) DeleteJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := jc.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.MessageResponse{Message: fmt.Sprintf("Job with id %d not found", id)})
			return
		}
		log.Printf("Failed to delete job %d: %v", id, err)
		c.JSON(http.StatusBadRequest, utilities.MessageResponse{Message: "Error deleting job"})
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job deleted successfully"})
}

func pathID(c *gin.Context) (uint, bool) {
	// Ids are BIGSERIAL, anything above MaxInt64 cannot name a row.
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.MessageResponse{Message: "Invalid job id"})
		return 0, false
	}
	return uint(id), true
}
