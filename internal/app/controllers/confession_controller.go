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

// ConfessionController handles confession endpoints
type ConfessionController struct {
	confessionService *services.ConfessionService
}

// NewConfessionController creates a new ConfessionController
func NewConfessionController(confessionService *services.ConfessionService) *ConfessionController {
	return &ConfessionController{confessionService: confessionService}
}

// Submit godoc
// @Summary Submit a confession
// @Description Confessions enter a moderation queue. Anonymous submissions store no author.
// @Tags confessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitConfessionRequest true "Confession"
// @Success 201 {object} dto.APIResponse{data=dto.ConfessionResponse}
// @Router /confessions [post]
func (c *ConfessionController) Submit(ctx *gin.Context) {
	var req dto.SubmitConfessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	isAnonymous := true
	if req.IsAnonymous != nil {
		isAnonymous = *req.IsAnonymous
	}

	userID, _ := middleware.CurrentUserID(ctx)
	confession, err := c.confessionService.Submit(ctx, userID, req.Content, isAnonymous, req.Tags)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ConfessionFromModel(confession)))
}

// List godoc
// @Summary List confessions
// @Description Newest first, annotated with the caller's like state. The status filter is admin only; other callers always get the approved feed.
// @Tags confessions
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (admin only)" Enums(approved, pending, rejected, all) default(approved)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.ConfessionListResponse}
// @Router /confessions [get]
func (c *ConfessionController) List(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)
	userID, _ := middleware.CurrentUserID(ctx)
	role, _ := middleware.CurrentRole(ctx)

	status := models.ConfessionStatus(ctx.DefaultQuery("status", string(models.ConfessionApproved)))
	if status == "all" {
		status = ""
	}

	confessions, total, err := c.confessionService.List(ctx, userID, role, status, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.ConfessionListResponse{
		Confessions: make([]*dto.ConfessionResponse, 0, len(confessions)),
		Pagination:  dto.NewPaginationInfo(page, pageSize, total),
	}
	for _, confession := range confessions {
		resp.Confessions = append(resp.Confessions, dto.ConfessionFromModel(confession))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ListPending godoc
// @Summary List the moderation queue
// @Description Admin only, oldest first
// @Tags confessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ConfessionListResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /confessions/pending [get]
func (c *ConfessionController) ListPending(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	confessions, err := c.confessionService.ListPending(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.ConfessionListResponse{Confessions: make([]*dto.ConfessionResponse, 0, len(confessions))}
	for _, confession := range confessions {
		resp.Confessions = append(resp.Confessions, dto.ConfessionFromModel(confession))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ToggleLike godoc
// @Summary Toggle a like
// @Description Likes an unliked confession, unlikes a liked one
// @Tags confessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Confession ID"
// @Success 200 {object} dto.APIResponse{data=dto.LikeToggleResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /confessions/{id}/like [post]
func (c *ConfessionController) ToggleLike(ctx *gin.Context) {
	confessionID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	liked, likes, err := c.confessionService.ToggleLike(ctx, confessionID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.LikeToggleResponse{Liked: liked, Likes: likes}))
}

// Moderate godoc
// @Summary Moderate a confession
// @Description Admin only: approve or reject a pending confession
// @Tags confessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Confession ID"
// @Param request body dto.ModerateConfessionRequest true "Decision"
// @Success 200 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Not pending"
// @Router /confessions/{id}/moderate [put]
func (c *ConfessionController) Moderate(ctx *gin.Context) {
	confessionID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	var req dto.ModerateConfessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.confessionService.Moderate(ctx, confessionID, models.ConfessionStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Confession " + req.Status}))
}
