package dto

import (
	"time"

	"github.com/mesconnect/backend/internal/app/models"
)

// SubmitConfessionRequest represents the request body for submitting a confession
type SubmitConfessionRequest struct {
	Content     string  `json:"content" binding:"required,min=1,max=4000"`
	IsAnonymous *bool   `json:"isAnonymous,omitempty"`
	Tags        *string `json:"tags,omitempty" binding:"omitempty,max=200"`
}

// ModerateConfessionRequest represents the request body for moderating a confession
type ModerateConfessionRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected" example:"approved"`
}

// ConfessionResponse represents a confession as exposed by the API.
// Author is omitted for anonymous confessions.
type ConfessionResponse struct {
	ID          int64                   `json:"id"`
	Content     string                  `json:"content"`
	IsAnonymous bool                    `json:"isAnonymous"`
	Status      models.ConfessionStatus `json:"status"`
	Likes       int                     `json:"likes"`
	Tags        *string                 `json:"tags,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
	Author      *UserResponse           `json:"author,omitempty"`
	ViewerLiked bool                    `json:"viewerLiked"`
}

// ConfessionFromModel maps a confession model to its API representation
func ConfessionFromModel(c *models.Confession) *ConfessionResponse {
	resp := &ConfessionResponse{
		ID:          c.ID,
		Content:     c.Content,
		IsAnonymous: c.IsAnonymous,
		Status:      c.Status,
		Likes:       c.Likes,
		Tags:        c.Tags,
		CreatedAt:   c.CreatedAt,
		ViewerLiked: c.ViewerLiked,
	}
	if !c.IsAnonymous {
		resp.Author = UserFromModel(c.Author)
	}
	return resp
}

// ConfessionListResponse represents a page of confessions, newest first
type ConfessionListResponse struct {
	Confessions []*ConfessionResponse `json:"confessions"`
	Pagination  PaginationInfo        `json:"pagination"`
}

// LikeToggleResponse reports the outcome of a like toggle
type LikeToggleResponse struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}
