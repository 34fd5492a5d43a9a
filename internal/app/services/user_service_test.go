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

func TestUserServiceUpdateProfile(t *testing.T) {
	t.Run("maps_fields_and_returns_updated_user", func(t *testing.T) {
		firstName := "Ada"
		about := "compilers"

		var captured *models.ProfileUpdate
		store := &fakeUserStore{
			updateProfileFn: func(_ context.Context, userID int64, req *models.ProfileUpdate) error {
				assert.Equal(t, int64(7), userID)
				captured = req
				return nil
			},
			getByIDFn: func(_ context.Context, id int64) (*models.User, error) {
				return &models.User{ID: id, FirstName: firstName}, nil
			},
		}
		svc := NewUserService(store, zerolog.Nop())

		user, err := svc.UpdateProfile(context.Background(), 7, &dto.UpdateProfileRequest{
			FirstName: &firstName,
			About:     &about,
		})
		require.NoError(t, err)

		require.NotNil(t, captured)
		assert.Equal(t, &firstName, captured.FirstName)
		assert.Equal(t, &about, captured.About)
		assert.Nil(t, captured.Company)
		assert.Equal(t, firstName, user.FirstName)
	})

	t.Run("propagates_store_error", func(t *testing.T) {
		store := &fakeUserStore{
			updateProfileFn: func(context.Context, int64, *models.ProfileUpdate) error {
				return apperrors.ErrUserNotFound
			},
		}
		svc := NewUserService(store, zerolog.Nop())

		_, err := svc.UpdateProfile(context.Background(), 7, &dto.UpdateProfileRequest{})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserServiceDeactivate(t *testing.T) {
	t.Run("admin_cannot_deactivate_self", func(t *testing.T) {
		called := false
		store := &fakeUserStore{
			deactivateFn: func(context.Context, int64) error {
				called = true
				return nil
			},
		}
		svc := NewUserService(store, zerolog.Nop())

		err := svc.Deactivate(context.Background(), 3, 3)
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.False(t, called)
	})

	t.Run("deactivates_target_user", func(t *testing.T) {
		var deactivated int64
		store := &fakeUserStore{
			deactivateFn: func(_ context.Context, userID int64) error {
				deactivated = userID
				return nil
			},
		}
		svc := NewUserService(store, zerolog.Nop())

		err := svc.Deactivate(context.Background(), 9, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(9), deactivated)
	})

	t.Run("unknown_user", func(t *testing.T) {
		store := &fakeUserStore{
			deactivateFn: func(context.Context, int64) error {
				return apperrors.ErrUserNotFound
			},
		}
		svc := NewUserService(store, zerolog.Nop())

		err := svc.Deactivate(context.Background(), 9, 3)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
