package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/mesconnect/backend/internal/app/services"
	"github.com/mesconnect/backend/internal/middleware"
)

// FriendController handles friend graph endpoints
type FriendController struct {
	friendService *services.FriendService
}

// NewFriendController creates a new FriendController
func NewFriendController(friendService *services.FriendService) *FriendController {
	return &FriendController{friendService: friendService}
}

// SendRequest godoc
// @Summary Send a friend request
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FriendRequestRequest true "Target user"
// @Success 201 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already friends or pending"
// @Router /friends/requests [post]
func (c *FriendController) SendRequest(ctx *gin.Context) {
	var req dto.FriendRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	edge, err := c.friendService.SendRequest(ctx, userID, req.FriendID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{"edgeId": edge.ID}))
}

// AcceptRequest godoc
// @Summary Accept a friend request
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /friends/requests/{id}/accept [post]
func (c *FriendController) AcceptRequest(ctx *gin.Context) {
	edgeID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.friendService.AcceptRequest(ctx, edgeID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Friend request accepted"}))
}

// RejectRequest godoc
// @Summary Reject a friend request
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse
// @Router /friends/requests/{id}/reject [post]
func (c *FriendController) RejectRequest(ctx *gin.Context) {
	edgeID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.friendService.RejectRequest(ctx, edgeID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Friend request rejected"}))
}

// Remove godoc
// @Summary Remove a friend
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Friend user ID"
// @Success 200 {object} dto.APIResponse
// @Router /friends/{id} [delete]
func (c *FriendController) Remove(ctx *gin.Context) {
	friendID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.friendService.Remove(ctx, userID, friendID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Friend removed"}))
}

// Block godoc
// @Summary Block a user
// @Description Block all interaction with another user
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID to block"
// @Success 200 {object} dto.APIResponse
// @Router /friends/{id}/block [post]
func (c *FriendController) Block(ctx *gin.Context) {
	otherID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.friendService.Block(ctx, userID, otherID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "User blocked"}))
}

// List godoc
// @Summary List friends
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FriendListResponse}
// @Router /friends [get]
func (c *FriendController) List(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	friends, err := c.friendService.ListFriends(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toFriendList(friends)))
}

// ListRequests godoc
// @Summary List incoming friend requests
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FriendListResponse}
// @Router /friends/requests [get]
func (c *FriendController) ListRequests(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	requests, err := c.friendService.ListPendingRequests(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toFriendList(requests)))
}

func toFriendList(friends []*models.Friend) dto.FriendListResponse {
	resp := dto.FriendListResponse{Friends: make([]*dto.FriendResponse, 0, len(friends))}
	for _, f := range friends {
		resp.Friends = append(resp.Friends, dto.FriendFromModel(f))
	}
	return resp
}
