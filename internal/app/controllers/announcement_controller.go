package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/mesconnect/backend/internal/app/services"
	"github.com/mesconnect/backend/internal/middleware"
	"github.com/mesconnect/backend/internal/pkg/helpers"
)

// AnnouncementController handles announcement endpoints
type AnnouncementController struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

// Create godoc
// @Summary Publish an announcement
// @Description Admin only. Notifies every user in the target audience.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} dto.APIResponse{data=dto.AnnouncementResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /announcements [post]
func (c *AnnouncementController) Create(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	announcement, err := c.announcementService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.AnnouncementFromModel(announcement)))
}

// List godoc
// @Summary List announcements
// @Description Active announcements visible to the caller's role, most urgent first
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum announcements" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.AnnouncementListResponse}
// @Router /announcements [get]
func (c *AnnouncementController) List(ctx *gin.Context) {
	role, _ := middleware.CurrentRole(ctx)
	limit := helpers.ParseLimit(ctx, helpers.DefaultPageSize)

	announcements, err := c.announcementService.ListForRole(ctx, role, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.AnnouncementListResponse{Announcements: make([]*dto.AnnouncementResponse, 0, len(announcements))}
	for _, a := range announcements {
		resp.Announcements = append(resp.Announcements, dto.AnnouncementFromModel(a))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Deactivate godoc
// @Summary Deactivate an announcement
// @Description Admin only. Hides the announcement from listings.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /announcements/{id} [delete]
func (c *AnnouncementController) Deactivate(ctx *gin.Context) {
	announcementID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.announcementService.Deactivate(ctx, announcementID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Announcement deactivated"}))
}
