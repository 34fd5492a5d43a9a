package services

import (
	"context"
	"strings"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// ConfessionService handles confession submission, listing, likes and
// moderation
type ConfessionService struct {
	confessionRepo ConfessionStore
	logger         zerolog.Logger
}

// NewConfessionService creates a new ConfessionService
func NewConfessionService(confessionRepo ConfessionStore, logger zerolog.Logger) *ConfessionService {
	return &ConfessionService{confessionRepo: confessionRepo, logger: logger}
}

// Submit stores a confession for moderation. Anonymous submissions are
// stored without any author reference.
func (s *ConfessionService) Submit(ctx context.Context, authorID int64, content string, isAnonymous bool, tags *string) (*models.Confession, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewBadRequestError("confession content cannot be empty")
	}

	confession, err := s.confessionRepo.Submit(ctx, authorID, content, isAnonymous, tags)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("confessionId", confession.ID).Bool("anonymous", isAnonymous).Msg("Confession submitted")
	return confession, nil
}

// List retrieves the confession feed, newest first. Only admins may request
// a status other than approved; everyone else sees the approved feed.
func (s *ConfessionService) List(ctx context.Context, viewerID int64, viewerRole models.Role, status models.ConfessionStatus, page, pageSize int) ([]*models.Confession, int64, error) {
	if viewerRole != models.RoleAdmin {
		status = models.ConfessionApproved
	}
	return s.confessionRepo.List(ctx, viewerID, status, page, pageSize)
}

// ListPending retrieves the moderation queue, oldest first
func (s *ConfessionService) ListPending(ctx context.Context, viewerID int64) ([]*models.Confession, error) {
	return s.confessionRepo.ListPending(ctx, viewerID)
}

// ToggleLike flips the viewer's like and returns the new state and count
func (s *ConfessionService) ToggleLike(ctx context.Context, confessionID, userID int64) (bool, int, error) {
	return s.confessionRepo.ToggleLike(ctx, confessionID, userID)
}

// Moderate approves or rejects a pending confession
func (s *ConfessionService) Moderate(ctx context.Context, confessionID int64, status models.ConfessionStatus) error {
	if err := s.confessionRepo.Moderate(ctx, confessionID, status); err != nil {
		return err
	}
	s.logger.Info().Int64("confessionId", confessionID).Str("status", string(status)).Msg("Confession moderated")
	return nil
}
