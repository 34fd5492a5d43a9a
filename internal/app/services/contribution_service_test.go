package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
)

type fakeContributionStore struct {
	createFn       func(context.Context, *models.Contribution) error
	listFn         func(context.Context, models.ContributionType, models.ContributionStatus, int) ([]*models.Contribution, error)
	listByAlumniFn func(context.Context, int64) ([]*models.Contribution, error)
	updateStatusFn func(context.Context, int64, models.ContributionStatus) error
}

func (f *fakeContributionStore) Create(ctx context.Context, contribution *models.Contribution) error {
	if f.createFn == nil {
		contribution.ID = 1
		return nil
	}
	return f.createFn(ctx, contribution)
}

func (f *fakeContributionStore) List(ctx context.Context, ctype models.ContributionType, status models.ContributionStatus, limit int) ([]*models.Contribution, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, ctype, status, limit)
}

func (f *fakeContributionStore) ListByAlumni(ctx context.Context, alumniID int64) ([]*models.Contribution, error) {
	if f.listByAlumniFn == nil {
		return nil, nil
	}
	return f.listByAlumniFn(ctx, alumniID)
}

func (f *fakeContributionStore) UpdateStatus(ctx context.Context, contributionID int64, status models.ContributionStatus) error {
	if f.updateStatusFn == nil {
		return nil
	}
	return f.updateStatusFn(ctx, contributionID, status)
}

func TestContributionServiceCreate(t *testing.T) {
	t.Run("students_cannot_contribute", func(t *testing.T) {
		svc := NewContributionService(&fakeContributionStore{}, &fakeUserStore{
			getByIDFn: func(_ context.Context, id int64) (*models.User, error) {
				return &models.User{ID: id, Role: models.RoleStudent}, nil
			},
		}, zerolog.Nop())

		_, err := svc.Create(context.Background(), 3, &dto.CreateContributionRequest{
			Type: "mentorship", Title: "Career mentoring",
		})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("alumni_offer_is_recorded", func(t *testing.T) {
		var created *models.Contribution
		svc := NewContributionService(&fakeContributionStore{
			createFn: func(_ context.Context, contribution *models.Contribution) error {
				created = contribution
				contribution.ID = 8
				return nil
			},
		}, alumniUserStore(), zerolog.Nop())

		hours := 10
		contribution, err := svc.Create(context.Background(), 3, &dto.CreateContributionRequest{
			Type: "workshop", Title: "Intro to Go", Hours: &hours,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(8), contribution.ID)
		assert.Equal(t, int64(3), created.AlumniID)
		assert.Equal(t, models.ContributionWorkshop, created.Type)
		require.NotNil(t, created.Hours)
		assert.Equal(t, 10, *created.Hours)
	})
}

func TestContributionServiceUpdateStatus(t *testing.T) {
	t.Run("passes_target_status", func(t *testing.T) {
		var gotStatus models.ContributionStatus
		svc := NewContributionService(&fakeContributionStore{
			updateStatusFn: func(_ context.Context, contributionID int64, status models.ContributionStatus) error {
				assert.Equal(t, int64(8), contributionID)
				gotStatus = status
				return nil
			},
		}, alumniUserStore(), zerolog.Nop())

		require.NoError(t, svc.UpdateStatus(context.Background(), 8, models.ContributionApproved))
		assert.Equal(t, models.ContributionApproved, gotStatus)
	})

	t.Run("propagates_invalid_transition", func(t *testing.T) {
		svc := NewContributionService(&fakeContributionStore{
			updateStatusFn: func(_ context.Context, _ int64, _ models.ContributionStatus) error {
				return apperrors.ErrInvalidStatusTransition
			},
		}, alumniUserStore(), zerolog.Nop())
		assert.ErrorIs(t, svc.UpdateStatus(context.Background(), 8, models.ContributionCompleted), apperrors.ErrInvalidStatusTransition)
	})
}

func TestContributionServiceListByAlumni(t *testing.T) {
	svc := NewContributionService(&fakeContributionStore{
		listByAlumniFn: func(_ context.Context, alumniID int64) ([]*models.Contribution, error) {
			assert.Equal(t, int64(3), alumniID)
			return []*models.Contribution{{ID: 8, AlumniID: 3, Status: models.ContributionPending}}, nil
		},
	}, alumniUserStore(), zerolog.Nop())

	contributions, err := svc.ListByAlumni(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, contributions, 1)
	assert.Equal(t, models.ContributionPending, contributions[0].Status)
}
