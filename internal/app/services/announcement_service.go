package services

import (
	"context"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/rs/zerolog"
)

// AnnouncementService handles broadcast announcements
type AnnouncementService struct {
	announcementRepo AnnouncementStore
	logger           zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcementRepo AnnouncementStore, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo, logger: logger}
}

// Create publishes an announcement to its target audience
func (s *AnnouncementService) Create(ctx context.Context, creatorID int64, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	priority := models.AnnouncementPriority(req.Priority)
	if priority == "" {
		priority = models.PriorityNormal
	}

	announcement := &models.Announcement{
		Title:      req.Title,
		Content:    req.Content,
		CreatedBy:  creatorID,
		TargetRole: req.TargetRole,
		Priority:   priority,
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("announcementId", announcement.ID).Str("priority", string(priority)).Msg("Announcement published")
	return announcement, nil
}

// ListForRole retrieves active announcements visible to the given role
func (s *AnnouncementService) ListForRole(ctx context.Context, role models.Role, limit int) ([]*models.Announcement, error) {
	return s.announcementRepo.ListForRole(ctx, role, limit)
}

// Deactivate hides an announcement from listings
func (s *AnnouncementService) Deactivate(ctx context.Context, announcementID int64) error {
	return s.announcementRepo.Deactivate(ctx, announcementID)
}
