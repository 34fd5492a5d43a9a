package dto

import (
	"time"

	"github.com/mesconnect/backend/internal/app/models"
)

// CreateGroupRequest represents the request body for creating a group
type CreateGroupRequest struct {
	Name        string  `json:"name" binding:"required,min=3,max=100" example:"Robotics Club"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
	Category    string  `json:"category" binding:"omitempty,max=50" example:"technical"`
	CoverPic    *string `json:"coverPic,omitempty"`
}

// GroupResponse represents a group as exposed by the API
type GroupResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	CreatedBy   int64         `json:"createdBy"`
	IsPublic    bool          `json:"isPublic"`
	Category    string        `json:"category"`
	CoverPic    *string       `json:"coverPic,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	Creator     *UserResponse `json:"creator,omitempty"`
	MemberCount int           `json:"memberCount"`
}

// GroupFromModel maps a group model to its API representation
func GroupFromModel(g *models.Group) *GroupResponse {
	return &GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CreatedBy:   g.CreatedBy,
		IsPublic:    g.IsPublic,
		Category:    g.Category,
		CoverPic:    g.CoverPic,
		CreatedAt:   g.CreatedAt,
		Creator:     UserFromModel(g.Creator),
		MemberCount: g.MemberCount,
	}
}

// GroupListResponse represents a list of groups
type GroupListResponse struct {
	Groups []*GroupResponse `json:"groups"`
}

// GroupMemberResponse represents a group member as exposed by the API
type GroupMemberResponse struct {
	ID       int64            `json:"id"`
	GroupID  int64            `json:"groupId"`
	Role     models.GroupRole `json:"role"`
	JoinedAt time.Time        `json:"joinedAt"`
	User     *UserResponse    `json:"user"`
}

// GroupMemberFromModel maps a membership row to its API representation
func GroupMemberFromModel(m *models.GroupMember) *GroupMemberResponse {
	return &GroupMemberResponse{
		ID:       m.ID,
		GroupID:  m.GroupID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
		User:     UserFromModel(m.User),
	}
}

// GroupMemberListResponse represents the member roster of a group,
// admins first, then moderators, then members
type GroupMemberListResponse struct {
	Members []*GroupMemberResponse `json:"members"`
}

// PostGroupMessageRequest represents the request body for posting to a group
type PostGroupMessageRequest struct {
	Body       string  `json:"body" binding:"required,min=1,max=4000"`
	Attachment *string `json:"attachment,omitempty"`
}

// GroupMessageResponse represents a group message as exposed by the API
type GroupMessageResponse struct {
	ID         int64         `json:"id"`
	GroupID    int64         `json:"groupId"`
	SenderID   int64         `json:"senderId"`
	Body       string        `json:"body"`
	Attachment *string       `json:"attachment,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	Sender     *UserResponse `json:"sender,omitempty"`
}

// GroupMessageFromModel maps a group message to its API representation
func GroupMessageFromModel(m *models.GroupMessage) *GroupMessageResponse {
	return &GroupMessageResponse{
		ID:         m.ID,
		GroupID:    m.GroupID,
		SenderID:   m.SenderID,
		Body:       m.Body,
		Attachment: m.Attachment,
		CreatedAt:  m.CreatedAt,
		Sender:     UserFromModel(m.Sender),
	}
}

// GroupMessageListResponse represents a group's message history, oldest first
type GroupMessageListResponse struct {
	Messages []*GroupMessageResponse `json:"messages"`
}
