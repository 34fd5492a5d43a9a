package services

import (
	"context"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/rs/zerolog"
)

// GroupService handles groups, memberships and group chat
type GroupService struct {
	groupRepo GroupStore
	logger    zerolog.Logger
}

// NewGroupService creates a new GroupService
func NewGroupService(groupRepo GroupStore, logger zerolog.Logger) *GroupService {
	return &GroupService{groupRepo: groupRepo, logger: logger}
}

// Create creates a group with the creator as its admin
func (s *GroupService) Create(ctx context.Context, creatorID int64, req *dto.CreateGroupRequest) (*models.Group, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	category := req.Category
	if category == "" {
		category = "general"
	}

	group := &models.Group{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   creatorID,
		IsPublic:    isPublic,
		Category:    category,
		CoverPic:    req.CoverPic,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("groupId", group.ID).Int64("creatorId", creatorID).Msg("Group created")
	return group, nil
}

// GetByID retrieves a group
func (s *GroupService) GetByID(ctx context.Context, groupID int64) (*models.Group, error) {
	return s.groupRepo.GetByID(ctx, groupID)
}

// List retrieves the groups visible to the viewer, optionally filtered by
// category
func (s *GroupService) List(ctx context.Context, viewerID int64, category string, limit int) ([]*models.Group, error) {
	return s.groupRepo.List(ctx, viewerID, category, limit)
}

// Join adds the user to a group
func (s *GroupService) Join(ctx context.Context, groupID, userID int64) error {
	return s.groupRepo.Join(ctx, groupID, userID)
}

// Leave removes the user from a group
func (s *GroupService) Leave(ctx context.Context, groupID, userID int64) error {
	return s.groupRepo.Leave(ctx, groupID, userID)
}

// ListMembers retrieves the group roster, ordered by role seniority
func (s *GroupService) ListMembers(ctx context.Context, groupID int64) ([]*models.GroupMember, error) {
	return s.groupRepo.ListMembers(ctx, groupID)
}

// PostMessage appends a message to the group chat. Posting is open to any
// authenticated user, membership is not required.
func (s *GroupService) PostMessage(ctx context.Context, groupID, senderID int64, body string, attachment *string) (*models.GroupMessage, error) {
	message := &models.GroupMessage{
		GroupID:    groupID,
		SenderID:   senderID,
		Body:       body,
		Attachment: attachment,
	}
	if err := s.groupRepo.PostMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListMessages retrieves the group chat history, oldest first
func (s *GroupService) ListMessages(ctx context.Context, groupID int64, limit int) ([]*models.GroupMessage, error) {
	return s.groupRepo.ListMessages(ctx, groupID, limit)
}
