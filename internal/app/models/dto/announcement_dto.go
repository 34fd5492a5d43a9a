package dto

import (
	"time"

	"github.com/mesconnect/backend/internal/app/models"
)

// CreateAnnouncementRequest represents the request body for creating an announcement
type CreateAnnouncementRequest struct {
	Title      string  `json:"title" binding:"required,min=3,max=200"`
	Content    string  `json:"content" binding:"required,max=4000"`
	TargetRole *string `json:"targetRole,omitempty" binding:"omitempty,oneof=student alumni all"`
	Priority   string  `json:"priority" binding:"omitempty,oneof=low normal high urgent" example:"normal"`
}

// AnnouncementResponse represents an announcement as exposed by the API
type AnnouncementResponse struct {
	ID         int64                       `json:"id"`
	Title      string                      `json:"title"`
	Content    string                      `json:"content"`
	CreatedBy  int64                       `json:"createdBy"`
	TargetRole *string                     `json:"targetRole,omitempty"`
	Priority   models.AnnouncementPriority `json:"priority"`
	IsActive   bool                        `json:"isActive"`
	CreatedAt  time.Time                   `json:"createdAt"`
	Author     *UserResponse               `json:"author,omitempty"`
}

// AnnouncementFromModel maps an announcement model to its API representation
func AnnouncementFromModel(a *models.Announcement) *AnnouncementResponse {
	return &AnnouncementResponse{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		CreatedBy:  a.CreatedBy,
		TargetRole: a.TargetRole,
		Priority:   a.Priority,
		IsActive:   a.IsActive,
		CreatedAt:  a.CreatedAt,
		Author:     UserFromModel(a.Author),
	}
}

// AnnouncementListResponse represents announcements ordered by priority,
// most urgent first, then newest first
type AnnouncementListResponse struct {
	Announcements []*AnnouncementResponse `json:"announcements"`
}
