package dto

import (
	"time"

	"github.com/mesconnect/backend/internal/app/models"
)

// SendMessageRequest represents the request body for sending a direct message
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiverId" binding:"required" example:"2"`
	Body       string `json:"body" binding:"required,min=1,max=4000" example:"See you at the hackathon?"`
}

// MessageResponse represents a direct message as exposed by the API
type MessageResponse struct {
	ID         int64         `json:"id"`
	SenderID   int64         `json:"senderId"`
	ReceiverID int64         `json:"receiverId"`
	Body       string        `json:"body"`
	IsRead     bool          `json:"isRead"`
	CreatedAt  time.Time     `json:"createdAt"`
	Sender     *UserResponse `json:"sender,omitempty"`
}

// MessageFromModel maps a message model to its API representation
func MessageFromModel(m *models.Message) *MessageResponse {
	return &MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Body:       m.Body,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
		Sender:     UserFromModel(m.Sender),
	}
}

// ThreadResponse represents one conversation thread, oldest message first
type ThreadResponse struct {
	Messages []*MessageResponse `json:"messages"`
}

// ConversationResponse represents a conversation summary row
type ConversationResponse struct {
	Counterpart     *UserResponse `json:"counterpart"`
	LastMessage     string        `json:"lastMessage"`
	LastMessageTime time.Time     `json:"lastMessageTime"`
	UnreadCount     int           `json:"unreadCount"`
}

// ConversationFromModel maps a conversation summary to its API representation
func ConversationFromModel(c *models.Conversation) *ConversationResponse {
	return &ConversationResponse{
		Counterpart:     UserFromModel(c.Counterpart),
		LastMessage:     c.LastMessage,
		LastMessageTime: c.LastMessageTime,
		UnreadCount:     c.UnreadCount,
	}
}

// ConversationListResponse represents the viewer's conversation list,
// most recent activity first
type ConversationListResponse struct {
	Conversations []*ConversationResponse `json:"conversations"`
}
