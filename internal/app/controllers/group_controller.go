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

// GroupController handles group endpoints
type GroupController struct {
	groupService *services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService *services.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// Create godoc
// @Summary Create a group
// @Description The creator becomes the group's admin
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGroupRequest true "Group details"
// @Success 201 {object} dto.APIResponse{data=dto.GroupResponse}
// @Router /groups [post]
func (c *GroupController) Create(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	group, err := c.groupService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.GroupFromModel(group)))
}

// List godoc
// @Summary List groups
// @Description Public groups plus the caller's private groups
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Param limit query int false "Maximum groups" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.GroupListResponse}
// @Router /groups [get]
func (c *GroupController) List(ctx *gin.Context) {
	limit := helpers.ParseLimit(ctx, helpers.DefaultPageSize)
	viewerID, _ := middleware.CurrentUserID(ctx)
	groups, err := c.groupService.List(ctx, viewerID, ctx.Query("category"), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.GroupListResponse{Groups: make([]*dto.GroupResponse, 0, len(groups))}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, dto.GroupFromModel(g))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetByID godoc
// @Summary Get a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse{data=dto.GroupResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /groups/{id} [get]
func (c *GroupController) GetByID(ctx *gin.Context) {
	groupID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	group, err := c.groupService.GetByID(ctx, groupID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.GroupFromModel(group)))
}

// Join godoc
// @Summary Join a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already a member"
// @Router /groups/{id}/join [post]
func (c *GroupController) Join(ctx *gin.Context) {
	groupID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.groupService.Join(ctx, groupID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Joined group"}))
}

// Leave godoc
// @Summary Leave a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse
// @Router /groups/{id}/leave [post]
func (c *GroupController) Leave(ctx *gin.Context) {
	groupID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.groupService.Leave(ctx, groupID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Left group"}))
}

// ListMembers godoc
// @Summary List group members
// @Description Roster ordered by role: admins, moderators, then members
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse{data=dto.GroupMemberListResponse}
// @Router /groups/{id}/members [get]
func (c *GroupController) ListMembers(ctx *gin.Context) {
	groupID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	members, err := c.groupService.ListMembers(ctx, groupID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.GroupMemberListResponse{Members: make([]*dto.GroupMemberResponse, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, dto.GroupMemberFromModel(m))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// PostMessage godoc
// @Summary Post a group message
// @Description Open to any authenticated user
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param request body dto.PostGroupMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=dto.GroupMessageResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /groups/{id}/messages [post]
func (c *GroupController) PostMessage(ctx *gin.Context) {
	groupID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	var req dto.PostGroupMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	message, err := c.groupService.PostMessage(ctx, groupID, userID, req.Body, req.Attachment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.GroupMessageFromModel(message)))
}

// ListMessages godoc
// @Summary Get group chat history
// @Description Oldest first
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param limit query int false "Maximum messages" default(100)
// @Success 200 {object} dto.APIResponse{data=dto.GroupMessageListResponse}
// @Router /groups/{id}/messages [get]
func (c *GroupController) ListMessages(ctx *gin.Context) {
	groupID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	limit := helpers.ParseLimit(ctx, helpers.MaxPageSize)

	messages, err := c.groupService.ListMessages(ctx, groupID, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.GroupMessageListResponse{Messages: make([]*dto.GroupMessageResponse, 0, len(messages))}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, dto.GroupMessageFromModel(m))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
