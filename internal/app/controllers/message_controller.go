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

// MessageController handles direct messaging endpoints
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// Send godoc
// @Summary Send a direct message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Blocked"
// @Router /messages [post]
func (c *MessageController) Send(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	message, err := c.messageService.Send(ctx, userID, req.ReceiverID, req.Body)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.MessageFromModel(message)))
}

// GetThread godoc
// @Summary Get a conversation thread
// @Description Messages with one user, oldest first. Fetching marks incoming messages as read.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Counterpart user ID"
// @Param limit query int false "Maximum messages" default(100)
// @Success 200 {object} dto.APIResponse{data=dto.ThreadResponse}
// @Router /messages/{userId} [get]
func (c *MessageController) GetThread(ctx *gin.Context) {
	otherID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	limit := helpers.ParseLimit(ctx, helpers.MaxPageSize)

	userID, _ := middleware.CurrentUserID(ctx)
	messages, err := c.messageService.GetThread(ctx, userID, otherID, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.ThreadResponse{Messages: make([]*dto.MessageResponse, 0, len(messages))}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, dto.MessageFromModel(m))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ListConversations godoc
// @Summary List conversations
// @Description One row per counterpart, most recent activity first, with unread counts
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ConversationListResponse}
// @Router /messages [get]
func (c *MessageController) ListConversations(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	conversations, err := c.messageService.ListConversations(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.ConversationListResponse{Conversations: make([]*dto.ConversationResponse, 0, len(conversations))}
	for _, conv := range conversations {
		resp.Conversations = append(resp.Conversations, dto.ConversationFromModel(conv))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UnreadCount godoc
// @Summary Total unread message count
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /messages/unread [get]
func (c *MessageController) UnreadCount(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	count, err := c.messageService.UnreadTotal(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"unreadCount": count}))
}
