package dto

import (
	"time"

	"github.com/mesconnect/backend/internal/app/models"
)

// FriendRequestRequest represents the request body for sending a friend request
type FriendRequestRequest struct {
	FriendID int64 `json:"friendId" binding:"required" example:"2"`
}

// FriendResponse represents one counterpart on a friend edge
type FriendResponse struct {
	EdgeID       int64               `json:"edgeId"`
	User         *UserResponse       `json:"user"`
	Status       models.FriendStatus `json:"status"`
	FriendsSince time.Time           `json:"friendsSince"`
	Outgoing     bool                `json:"outgoing"`
}

// FriendFromModel maps a friend counterpart to its API representation
func FriendFromModel(f *models.Friend) *FriendResponse {
	return &FriendResponse{
		EdgeID:       f.EdgeID,
		User:         UserFromModel(f.User),
		Status:       f.Status,
		FriendsSince: f.FriendsSince,
		Outgoing:     f.Outgoing,
	}
}

// FriendListResponse represents a list of friends or pending requests
type FriendListResponse struct {
	Friends []*FriendResponse `json:"friends"`
}
