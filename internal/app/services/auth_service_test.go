package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
	"github.com/mesconnect/backend/internal/pkg/auth"
)

type fakeUserStore struct {
	createFn          func(context.Context, *models.User) (int64, error)
	getByIDFn         func(context.Context, int64) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	emailExistsFn     func(context.Context, string) (bool, error)
	updateLastLoginFn func(context.Context, int64) error
	updateProfileFn   func(context.Context, int64, *models.ProfileUpdate) error
	searchFn          func(context.Context, int64, string, models.Role, int, int) ([]*models.User, int64, error)
	deactivateFn      func(context.Context, int64) error
	platformStatsFn   func(context.Context) (*models.PlatformStats, error)
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) (int64, error) {
	if f.createFn == nil {
		return 1, nil
	}
	return f.createFn(ctx, user)
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getByIDFn == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailFn == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	if f.emailExistsFn == nil {
		return false, nil
	}
	return f.emailExistsFn(ctx, email)
}

func (f *fakeUserStore) UpdateLastLogin(ctx context.Context, userID int64) error {
	if f.updateLastLoginFn == nil {
		return nil
	}
	return f.updateLastLoginFn(ctx, userID)
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, userID int64, req *models.ProfileUpdate) error {
	if f.updateProfileFn == nil {
		return nil
	}
	return f.updateProfileFn(ctx, userID, req)
}

func (f *fakeUserStore) Search(ctx context.Context, viewerID int64, query string, role models.Role, page, pageSize int) ([]*models.User, int64, error) {
	if f.searchFn == nil {
		return nil, 0, nil
	}
	return f.searchFn(ctx, viewerID, query, role, page, pageSize)
}

func (f *fakeUserStore) Deactivate(ctx context.Context, userID int64) error {
	if f.deactivateFn == nil {
		return nil
	}
	return f.deactivateFn(ctx, userID)
}

func (f *fakeUserStore) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	if f.platformStatsFn == nil {
		return &models.PlatformStats{}, nil
	}
	return f.platformStatsFn(ctx)
}

type fakeTokenStore struct {
	createFn           func(context.Context, int64, string, time.Time) error
	getByTokenFn       func(context.Context, string) (*models.RefreshToken, error)
	revokeFn           func(context.Context, string) error
	revokeAllForUserFn func(context.Context, int64) error
}

func (f *fakeTokenStore) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, userID, token, expiresAt)
}

func (f *fakeTokenStore) GetByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.getByTokenFn == nil {
		return nil, apperrors.ErrTokenNotFound
	}
	return f.getByTokenFn(ctx, token)
}

func (f *fakeTokenStore) Revoke(ctx context.Context, token string) error {
	if f.revokeFn == nil {
		return nil
	}
	return f.revokeFn(ctx, token)
}

func (f *fakeTokenStore) RevokeAllForUser(ctx context.Context, userID int64) error {
	if f.revokeAllForUserFn == nil {
		return nil
	}
	return f.revokeAllForUserFn(ctx, userID)
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func newTestAuthService(users *fakeUserStore, tokens *fakeTokenStore) *AuthService {
	return NewAuthService(users, tokens, testJWTService(), zerolog.Nop())
}

func TestAuthServiceRegister(t *testing.T) {
	t.Run("rejects_admin_role", func(t *testing.T) {
		svc := newTestAuthService(&fakeUserStore{}, &fakeTokenStore{})
		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Email: "a@mes.edu", Password: "Password123!", FirstName: "A", LastName: "B", Role: "admin",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		svc := newTestAuthService(&fakeUserStore{}, &fakeTokenStore{})
		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Email: "a@mes.edu", Password: "Password123!", FirstName: "A", LastName: "B", Role: "professor",
		})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		svc := newTestAuthService(&fakeUserStore{
			emailExistsFn: func(_ context.Context, email string) (bool, error) {
				assert.Equal(t, "taken@mes.edu", email)
				return true, nil
			},
		}, &fakeTokenStore{})
		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Email: "taken@mes.edu", Password: "Password123!", FirstName: "A", LastName: "B", Role: "student",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})

	t.Run("stores_hashed_password_and_verified_account", func(t *testing.T) {
		var created *models.User
		svc := newTestAuthService(&fakeUserStore{
			createFn: func(_ context.Context, user *models.User) (int64, error) {
				created = user
				user.ID = 7
				return 7, nil
			},
		}, &fakeTokenStore{})

		user, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Email: "jane@mes.edu", Password: "Password123!", FirstName: "Jane", LastName: "Doe", Role: "alumni",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, models.RoleAlumni, created.Role)
		assert.True(t, created.IsVerified)
		assert.NotEqual(t, "Password123!", created.Password)
		assert.True(t, auth.CheckPassword(created.Password, "Password123!"))
	})
}

func TestAuthServiceLogin(t *testing.T) {
	hashed, err := auth.HashPassword("Password123!")
	require.NoError(t, err)

	storedUser := func() *models.User {
		return &models.User{
			ID:         3,
			Email:      "jane@mes.edu",
			Password:   hashed,
			Role:       models.RoleStudent,
			FirstName:  "Jane",
			LastName:   "Doe",
			IsVerified: true,
		}
	}

	t.Run("unknown_email_maps_to_invalid_credentials", func(t *testing.T) {
		svc := newTestAuthService(&fakeUserStore{}, &fakeTokenStore{})
		_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@mes.edu", Password: "x"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("wrong_password", func(t *testing.T) {
		svc := newTestAuthService(&fakeUserStore{
			getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return storedUser(), nil },
		}, &fakeTokenStore{})
		_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "jane@mes.edu", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unverified_account", func(t *testing.T) {
		user := storedUser()
		user.IsVerified = false
		svc := newTestAuthService(&fakeUserStore{
			getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return user, nil },
		}, &fakeTokenStore{})
		_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "jane@mes.edu", Password: "Password123!"})
		assert.ErrorIs(t, err, apperrors.ErrAccountNotVerified)
	})

	t.Run("success_persists_refresh_token", func(t *testing.T) {
		var storedToken string
		var storedUserID int64
		svc := newTestAuthService(&fakeUserStore{
			getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return storedUser(), nil },
		}, &fakeTokenStore{
			createFn: func(_ context.Context, userID int64, token string, expiresAt time.Time) error {
				storedUserID = userID
				storedToken = token
				assert.True(t, expiresAt.After(time.Now()))
				return nil
			},
		})

		resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "jane@mes.edu", Password: "Password123!"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, storedToken, resp.RefreshToken)
		assert.Equal(t, int64(3), storedUserID)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
		require.NotNil(t, resp.User)
		assert.Equal(t, "jane@mes.edu", resp.User.Email)
	})
}

func TestAuthServiceRefreshToken(t *testing.T) {
	t.Run("unknown_token", func(t *testing.T) {
		svc := newTestAuthService(&fakeUserStore{}, &fakeTokenStore{})
		_, err := svc.RefreshToken(context.Background(), "missing")
		assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})

	t.Run("revoked_token", func(t *testing.T) {
		svc := newTestAuthService(&fakeUserStore{}, &fakeTokenStore{
			getByTokenFn: func(_ context.Context, _ string) (*models.RefreshToken, error) {
				return &models.RefreshToken{UserID: 3, Revoked: true, ExpiresAt: time.Now().Add(time.Hour)}, nil
			},
		})
		_, err := svc.RefreshToken(context.Background(), "tok")
		assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	})

	t.Run("expired_token", func(t *testing.T) {
		svc := newTestAuthService(&fakeUserStore{}, &fakeTokenStore{
			getByTokenFn: func(_ context.Context, _ string) (*models.RefreshToken, error) {
				return &models.RefreshToken{UserID: 3, ExpiresAt: time.Now().Add(-time.Minute)}, nil
			},
		})
		_, err := svc.RefreshToken(context.Background(), "tok")
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("valid_token_is_rotated", func(t *testing.T) {
		var revoked string
		svc := newTestAuthService(&fakeUserStore{
			getByIDFn: func(_ context.Context, id int64) (*models.User, error) {
				return &models.User{ID: id, Email: "jane@mes.edu", Role: models.RoleStudent, IsVerified: true}, nil
			},
		}, &fakeTokenStore{
			getByTokenFn: func(_ context.Context, token string) (*models.RefreshToken, error) {
				return &models.RefreshToken{UserID: 3, Token: token, ExpiresAt: time.Now().Add(time.Hour)}, nil
			},
			revokeFn: func(_ context.Context, token string) error {
				revoked = token
				return nil
			},
		})

		resp, err := svc.RefreshToken(context.Background(), "old-token")
		require.NoError(t, err)
		assert.Equal(t, "old-token", revoked)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEqual(t, "old-token", resp.RefreshToken)
	})
}

func TestAuthServiceLogout(t *testing.T) {
	var revokedUser int64
	svc := newTestAuthService(&fakeUserStore{}, &fakeTokenStore{
		revokeAllForUserFn: func(_ context.Context, userID int64) error {
			revokedUser = userID
			return nil
		},
	})
	require.NoError(t, svc.Logout(context.Background(), 9))
	assert.Equal(t, int64(9), revokedUser)
}
