package dto

import (
	"time"

	"github.com/mesconnect/backend/internal/app/models"
)

// NotificationResponse represents a notification as exposed by the API
type NotificationResponse struct {
	ID          int64                   `json:"id"`
	Title       string                  `json:"title"`
	Message     string                  `json:"message"`
	Type        models.NotificationType `json:"type"`
	IsRead      bool                    `json:"isRead"`
	ReferenceID *int64                  `json:"referenceId,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
}

// NotificationFromModel maps a notification to its API representation
func NotificationFromModel(n *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:          n.ID,
		Title:       n.Title,
		Message:     n.Message,
		Type:        n.Type,
		IsRead:      n.IsRead,
		ReferenceID: n.ReferenceID,
		CreatedAt:   n.CreatedAt,
	}
}

// NotificationListResponse represents the viewer's inbox, newest first
type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int64                   `json:"unreadCount"`
}
