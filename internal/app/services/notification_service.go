package services

import (
	"context"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/rs/zerolog"
)

// NotificationService handles the per-user notification inbox
type NotificationService struct {
	notificationRepo NotificationStore
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo NotificationStore, logger zerolog.Logger) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo, logger: logger}
}

// List retrieves the user's notifications, newest first
func (s *NotificationService) List(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]*models.Notification, error) {
	return s.notificationRepo.ListForUser(ctx, userID, unreadOnly, limit)
}

// MarkRead marks one of the user's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID int64) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, userID)
}

// MarkAllRead marks all of the user's notifications as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// UnreadCount returns the user's unread notification count
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.notificationRepo.UnreadCount(ctx, userID)
}
