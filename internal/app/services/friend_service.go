package services

import (
	"context"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/rs/zerolog"
)

// FriendService handles the friend graph
type FriendService struct {
	friendRepo FriendStore
	logger     zerolog.Logger
}

// NewFriendService creates a new FriendService
func NewFriendService(friendRepo FriendStore, logger zerolog.Logger) *FriendService {
	return &FriendService{friendRepo: friendRepo, logger: logger}
}

// SendRequest creates a pending friend request toward another user
func (s *FriendService) SendRequest(ctx context.Context, senderID, recipientID int64) (*models.FriendEdge, error) {
	edge, err := s.friendRepo.SendRequest(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("senderId", senderID).Int64("recipientId", recipientID).Msg("Friend request sent")
	return edge, nil
}

// AcceptRequest accepts a pending request addressed to the user
func (s *FriendService) AcceptRequest(ctx context.Context, edgeID, userID int64) error {
	return s.friendRepo.AcceptRequest(ctx, edgeID, userID)
}

// RejectRequest discards a pending request addressed to the user
func (s *FriendService) RejectRequest(ctx context.Context, edgeID, userID int64) error {
	return s.friendRepo.RejectRequest(ctx, edgeID, userID)
}

// Remove unfriends another user
func (s *FriendService) Remove(ctx context.Context, userID, friendID int64) error {
	return s.friendRepo.Remove(ctx, userID, friendID)
}

// Block marks the relationship with another user as blocked. A blocked pair
// cannot exchange friend requests or messages until unblocked.
func (s *FriendService) Block(ctx context.Context, userID, otherID int64) error {
	if err := s.friendRepo.Block(ctx, userID, otherID); err != nil {
		return err
	}
	s.logger.Info().Int64("userId", userID).Int64("blockedId", otherID).Msg("User blocked")
	return nil
}

// ListFriends retrieves the user's accepted friends
func (s *FriendService) ListFriends(ctx context.Context, userID int64) ([]*models.Friend, error) {
	return s.friendRepo.ListFriends(ctx, userID)
}

// ListPendingRequests retrieves incoming pending requests
func (s *FriendService) ListPendingRequests(ctx context.Context, userID int64) ([]*models.Friend, error) {
	return s.friendRepo.ListPendingRequests(ctx, userID)
}
