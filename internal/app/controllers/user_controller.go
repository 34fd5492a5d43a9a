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

// UserController handles profile and directory endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetMe godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Router /users/me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	user, err := c.userService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UserFromModel(user)))
}

// GetByID godoc
// @Summary Get a user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /users/{id} [get]
func (c *UserController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	user, err := c.userService.GetProfile(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UserFromModel(user)))
}

// UpdateMe godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Router /users/me [put]
func (c *UserController) UpdateMe(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	user, err := c.userService.UpdateProfile(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UserFromModel(user)))
}

// Search godoc
// @Summary Search users
// @Description Find users by name, email or department, optionally filtered by role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query"
// @Param role query string false "Role filter" Enums(student, alumni, admin)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse}
// @Router /users/search [get]
func (c *UserController) Search(ctx *gin.Context) {
	var req dto.UserSearchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	page, pageSize := helpers.ParsePaginationParams(ctx)

	viewerID, _ := middleware.CurrentUserID(ctx)
	users, total, err := c.userService.Search(ctx, viewerID, req.Query, models.Role(req.Role), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.UserListResponse{
		Users:      make([]*dto.UserResponse, 0, len(users)),
		Pagination: dto.NewPaginationInfo(page, pageSize, total),
	}
	for _, user := range users {
		resp.Users = append(resp.Users, dto.UserFromModel(user))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Deactivate godoc
// @Summary Deactivate a user account
// @Description Suspends the account and revokes its refresh tokens
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/users/{id} [delete]
func (c *UserController) Deactivate(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	adminID, _ := middleware.CurrentUserID(ctx)
	if err := c.userService.Deactivate(ctx, id, adminID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "User deactivated"}))
}

// Stats godoc
// @Summary Platform statistics
// @Description Aggregated counters for the admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PlatformStatsResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/stats [get]
func (c *UserController) Stats(ctx *gin.Context) {
	stats, err := c.userService.PlatformStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.PlatformStatsResponse{
		TotalUsers:       stats.TotalUsers,
		TotalFriendships: stats.TotalFriendships,
		TotalMessages:    stats.TotalMessages,
		TotalGroups:      stats.TotalGroups,
		TotalEvents:      stats.TotalEvents,
		TotalConfessions: stats.TotalConfessions,
	}
	for _, rc := range stats.UsersByRole {
		resp.UsersByRole = append(resp.UsersByRole, dto.RoleCount{Role: rc.Role, Count: rc.Count})
	}
	for _, gp := range stats.UserGrowth {
		resp.UserGrowth = append(resp.UserGrowth, dto.GrowthPoint{Month: gp.Month, Count: gp.Count})
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
