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

type fakeAnnouncementStore struct {
	createFn      func(context.Context, *models.Announcement) error
	listForRoleFn func(context.Context, models.Role, int) ([]*models.Announcement, error)
	deactivateFn  func(context.Context, int64) error
}

func (f *fakeAnnouncementStore) Create(ctx context.Context, announcement *models.Announcement) error {
	if f.createFn == nil {
		announcement.ID = 1
		return nil
	}
	return f.createFn(ctx, announcement)
}

func (f *fakeAnnouncementStore) ListForRole(ctx context.Context, role models.Role, limit int) ([]*models.Announcement, error) {
	if f.listForRoleFn == nil {
		return nil, nil
	}
	return f.listForRoleFn(ctx, role, limit)
}

func (f *fakeAnnouncementStore) Deactivate(ctx context.Context, announcementID int64) error {
	if f.deactivateFn == nil {
		return nil
	}
	return f.deactivateFn(ctx, announcementID)
}

func TestAnnouncementServiceCreate(t *testing.T) {
	t.Run("defaults_to_normal_priority", func(t *testing.T) {
		var created *models.Announcement
		svc := NewAnnouncementService(&fakeAnnouncementStore{
			createFn: func(_ context.Context, a *models.Announcement) error {
				a.ID = 7
				created = a
				return nil
			},
		}, zerolog.Nop())

		announcement, err := svc.Create(context.Background(), 3, &dto.CreateAnnouncementRequest{
			Title:   "Maintenance window",
			Content: "The platform will be down on Saturday night",
		})
		require.NoError(t, err)

		assert.Equal(t, models.PriorityNormal, created.Priority)
		assert.Equal(t, int64(3), created.CreatedBy)
		assert.Equal(t, int64(7), announcement.ID)
	})

	t.Run("keeps_explicit_priority_and_target", func(t *testing.T) {
		target := "student"
		var created *models.Announcement
		svc := NewAnnouncementService(&fakeAnnouncementStore{
			createFn: func(_ context.Context, a *models.Announcement) error {
				created = a
				return nil
			},
		}, zerolog.Nop())

		_, err := svc.Create(context.Background(), 3, &dto.CreateAnnouncementRequest{
			Title:      "Exam schedule",
			Content:    "Posted on the notice board",
			TargetRole: &target,
			Priority:   "urgent",
		})
		require.NoError(t, err)

		assert.Equal(t, models.PriorityUrgent, created.Priority)
		require.NotNil(t, created.TargetRole)
		assert.Equal(t, "student", *created.TargetRole)
	})
}

func TestAnnouncementServiceDeactivate(t *testing.T) {
	svc := NewAnnouncementService(&fakeAnnouncementStore{
		deactivateFn: func(context.Context, int64) error {
			return apperrors.ErrResourceNotFound
		},
	}, zerolog.Nop())

	err := svc.Deactivate(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
