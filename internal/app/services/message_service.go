package services

import (
	"context"
	"strings"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
	"github.com/mesconnect/backend/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// MessageService handles direct messaging
type MessageService struct {
	messageRepo MessageStore
	friendRepo  FriendStore
	logger      zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo MessageStore, friendRepo FriendStore, logger zerolog.Logger) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		friendRepo:  friendRepo,
		logger:      logger,
	}
}

// Send delivers a message to another user. Blocked pairs cannot message
// each other.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID int64, body string) (*models.Message, error) {
	if senderID == receiverID {
		return nil, apperrors.NewBadRequestError("cannot message yourself")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperrors.NewBadRequestError("message body cannot be empty")
	}

	blocked, err := s.friendRepo.IsBlocked(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, apperrors.ErrUserBlocked
	}

	return s.messageRepo.Send(ctx, senderID, receiverID, body)
}

// GetThread retrieves the conversation with another user, oldest first.
// Fetching the thread marks the messages addressed to the viewer as read.
func (s *MessageService) GetThread(ctx context.Context, viewerID, otherID int64, limit int) ([]*models.Message, error) {
	if limit <= 0 || limit > helpers.MaxPageSize {
		limit = helpers.MaxPageSize
	}
	return s.messageRepo.GetThread(ctx, viewerID, otherID, limit)
}

// ListConversations retrieves the viewer's conversation summaries
func (s *MessageService) ListConversations(ctx context.Context, viewerID int64) ([]*models.Conversation, error) {
	return s.messageRepo.ListConversations(ctx, viewerID)
}

// UnreadTotal returns the viewer's total unread message count
func (s *MessageService) UnreadTotal(ctx context.Context, viewerID int64) (int64, error) {
	return s.messageRepo.UnreadTotal(ctx, viewerID)
}
