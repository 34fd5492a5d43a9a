package services

import (
	"context"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// ContributionService handles alumni contribution offers
type ContributionService struct {
	contributionRepo ContributionStore
	userRepo         UserStore
	logger           zerolog.Logger
}

// NewContributionService creates a new ContributionService
func NewContributionService(contributionRepo ContributionStore, userRepo UserStore, logger zerolog.Logger) *ContributionService {
	return &ContributionService{
		contributionRepo: contributionRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// Create records a contribution offer. Only alumni may contribute.
func (s *ContributionService) Create(ctx context.Context, userID int64, req *dto.CreateContributionRequest) (*models.Contribution, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleAlumni {
		return nil, apperrors.NewForbiddenError("only alumni can offer contributions")
	}

	contribution := &models.Contribution{
		AlumniID:       userID,
		Type:           models.ContributionType(req.Type),
		Title:          req.Title,
		Description:    req.Description,
		Amount:         req.Amount,
		Hours:          req.Hours,
		SkillsRequired: req.SkillsRequired,
		Deadline:       req.Deadline,
	}
	if err := s.contributionRepo.Create(ctx, contribution); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("contributionId", contribution.ID).Str("type", req.Type).Msg("Contribution offered")
	return contribution, nil
}

// List retrieves contributions, optionally filtered by type and status
func (s *ContributionService) List(ctx context.Context, ctype models.ContributionType, status models.ContributionStatus, limit int) ([]*models.Contribution, error) {
	return s.contributionRepo.List(ctx, ctype, status, limit)
}

// ListByAlumni retrieves the viewer's own contributions
func (s *ContributionService) ListByAlumni(ctx context.Context, alumniID int64) ([]*models.Contribution, error) {
	return s.contributionRepo.ListByAlumni(ctx, alumniID)
}

// UpdateStatus moves a contribution through its review lifecycle
func (s *ContributionService) UpdateStatus(ctx context.Context, contributionID int64, status models.ContributionStatus) error {
	return s.contributionRepo.UpdateStatus(ctx, contributionID, status)
}
