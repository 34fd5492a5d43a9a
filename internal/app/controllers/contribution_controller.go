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

// ContributionController handles alumni contribution endpoints
type ContributionController struct {
	contributionService *services.ContributionService
}

// NewContributionController creates a new ContributionController
func NewContributionController(contributionService *services.ContributionService) *ContributionController {
	return &ContributionController{contributionService: contributionService}
}

// Create godoc
// @Summary Offer a contribution
// @Description Alumni only. The offer enters a review queue.
// @Tags contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateContributionRequest true "Contribution offer"
// @Success 201 {object} dto.APIResponse{data=dto.ContributionResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /contributions [post]
func (c *ContributionController) Create(ctx *gin.Context) {
	var req dto.CreateContributionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	contribution, err := c.contributionService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ContributionFromModel(contribution)))
}

// List godoc
// @Summary List contributions
// @Tags contributions
// @Produce json
// @Security BearerAuth
// @Param type query string false "Type filter"
// @Param status query string false "Status filter"
// @Param limit query int false "Maximum contributions" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.ContributionListResponse}
// @Router /contributions [get]
func (c *ContributionController) List(ctx *gin.Context) {
	limit := helpers.ParseLimit(ctx, helpers.DefaultPageSize)
	contributions, err := c.contributionService.List(ctx,
		models.ContributionType(ctx.Query("type")),
		models.ContributionStatus(ctx.Query("status")),
		limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toContributionList(contributions)))
}

// ListMine godoc
// @Summary List own contributions
// @Tags contributions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ContributionListResponse}
// @Router /contributions/mine [get]
func (c *ContributionController) ListMine(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	contributions, err := c.contributionService.ListByAlumni(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toContributionList(contributions)))
}

// UpdateStatus godoc
// @Summary Review a contribution
// @Description Admin only: approve, complete or reject
// @Tags contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contribution ID"
// @Param request body dto.UpdateContributionStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid transition"
// @Router /contributions/{id}/status [put]
func (c *ContributionController) UpdateStatus(ctx *gin.Context) {
	contributionID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	var req dto.UpdateContributionStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.contributionService.UpdateStatus(ctx, contributionID, models.ContributionStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Contribution " + req.Status}))
}

func toContributionList(contributions []*models.Contribution) dto.ContributionListResponse {
	resp := dto.ContributionListResponse{Contributions: make([]*dto.ContributionResponse, 0, len(contributions))}
	for _, contribution := range contributions {
		resp.Contributions = append(resp.Contributions, dto.ContributionFromModel(contribution))
	}
	return resp
}
