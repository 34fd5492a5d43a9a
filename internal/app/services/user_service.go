package services

import (
	"context"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// UserService handles profile and directory operations
type UserService struct {
	userRepo UserStore
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserStore, logger zerolog.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// GetProfile retrieves a user's profile
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies the requested changes to the viewer's profile and
// returns the updated user
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	update := &models.ProfileUpdate{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Department:      req.Department,
		Year:            req.Year,
		Skills:          req.Skills,
		About:           req.About,
		CurrentPosition: req.CurrentPosition,
		Company:         req.Company,
		LinkedIn:        req.LinkedIn,
		ProfilePic:      req.ProfilePic,
	}
	if err := s.userRepo.UpdateProfile(ctx, userID, update); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// Search finds users matching the query and role filter
func (s *UserService) Search(ctx context.Context, viewerID int64, query string, role models.Role, page, pageSize int) ([]*models.User, int64, error) {
	return s.userRepo.Search(ctx, viewerID, query, role, page, pageSize)
}

// Deactivate suspends an account. Admins cannot suspend themselves, so the
// platform always keeps at least one active admin.
func (s *UserService) Deactivate(ctx context.Context, userID, adminID int64) error {
	if userID == adminID {
		return apperrors.NewBadRequestError("cannot deactivate your own account")
	}
	if err := s.userRepo.Deactivate(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("userId", userID).Int64("adminId", adminID).Msg("User deactivated")
	return nil
}

// PlatformStats aggregates platform-wide counters for the admin dashboard
func (s *UserService) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	return s.userRepo.PlatformStats(ctx)
}
