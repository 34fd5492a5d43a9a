package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/mesconnect/backend/internal/app/services"
	"github.com/mesconnect/backend/internal/middleware"
	"github.com/mesconnect/backend/internal/pkg/helpers"
)

// JobController handles job posting endpoints
type JobController struct {
	jobService *services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// Create godoc
// @Summary Post a job
// @Description Alumni and admins only. Every student is notified.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job posting"
// @Success 201 {object} dto.APIResponse{data=dto.JobResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /jobs [post]
func (c *JobController) Create(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	job, err := c.jobService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.JobFromModel(job)))
}

// List godoc
// @Summary List open jobs
// @Description Active postings whose deadline has not passed, newest first
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum postings" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.JobListResponse}
// @Router /jobs [get]
func (c *JobController) List(ctx *gin.Context) {
	limit := helpers.ParseLimit(ctx, helpers.DefaultPageSize)
	jobs, err := c.jobService.ListActive(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.JobListResponse{Jobs: make([]*dto.JobResponse, 0, len(jobs))}
	for _, job := range jobs {
		resp.Jobs = append(resp.Jobs, dto.JobFromModel(job))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetByID godoc
// @Summary Get a job posting
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /jobs/{id} [get]
func (c *JobController) GetByID(ctx *gin.Context) {
	jobID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	job, err := c.jobService.GetByID(ctx, jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.JobFromModel(job)))
}

// Apply godoc
// @Summary Apply to a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.ApplyJobRequest true "Application"
// @Success 201 {object} dto.APIResponse{data=dto.JobApplicationResponse}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already applied"
// @Router /jobs/{id}/apply [post]
func (c *JobController) Apply(ctx *gin.Context) {
	jobID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	var req dto.ApplyJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	application, err := c.jobService.Apply(ctx, jobID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.JobApplicationFromModel(application)))
}

// ListApplications godoc
// @Summary List a posting's applications
// @Description Poster only
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.JobApplicationListResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /jobs/{id}/applications [get]
func (c *JobController) ListApplications(ctx *gin.Context) {
	jobID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	applications, err := c.jobService.ListApplications(ctx, jobID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.JobApplicationListResponse{Applications: make([]*dto.JobApplicationResponse, 0, len(applications))}
	for _, application := range applications {
		resp.Applications = append(resp.Applications, dto.JobApplicationFromModel(application))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateApplicationStatus godoc
// @Summary Review an application
// @Description Poster only: mark reviewed, accepted or rejected
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /jobs/applications/{id}/status [put]
func (c *JobController) UpdateApplicationStatus(ctx *gin.Context) {
	applicationID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.jobService.UpdateApplicationStatus(ctx, applicationID, userID, models.ApplicationStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Application " + req.Status}))
}

// Deactivate godoc
// @Summary Close a job posting
// @Description Poster only. The posting stops accepting applications.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse
// @Router /jobs/{id} [delete]
func (c *JobController) Deactivate(ctx *gin.Context) {
	jobID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.jobService.Deactivate(ctx, jobID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Job posting closed"}))
}
