package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/", nil)

	HandleAPIError(c, err)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return recorder, &resp
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid_credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired_token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"revoked_token", apperrors.ErrTokenRevoked, http.StatusUnauthorized},
		{"unverified_account", apperrors.ErrAccountNotVerified, http.StatusForbidden},
		{"permission_denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"blocked_user", apperrors.ErrUserBlocked, http.StatusForbidden},
		{"duplicate_email", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"already_friends", apperrors.ErrAlreadyFriends, http.StatusConflict},
		{"pending_request", apperrors.ErrFriendRequestPending, http.StatusConflict},
		{"already_member", apperrors.ErrAlreadyMember, http.StatusConflict},
		{"event_full", apperrors.ErrEventFull, http.StatusConflict},
		{"already_registered", apperrors.ErrAlreadyRegistered, http.StatusConflict},
		{"already_applied", apperrors.ErrAlreadyApplied, http.StatusConflict},
		{"invalid_transition", apperrors.ErrInvalidStatusTransition, http.StatusConflict},
		{"self_friendship", apperrors.ErrSelfFriendship, http.StatusBadRequest},
		{"bad_request", apperrors.ErrBadRequest, http.StatusBadRequest},
		{"user_not_found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"group_not_found", apperrors.ErrGroupNotFound, http.StatusNotFound},
		{"event_not_found", apperrors.ErrEventNotFound, http.StatusNotFound},
		{"not_registered", apperrors.ErrNotRegistered, http.StatusNotFound},
		{"unknown_error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder, resp := handleError(t, tc.err)
			assert.Equal(t, tc.wantStatus, recorder.Code)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.NotEmpty(t, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestHandleAPIErrorUsesCustomMessage(t *testing.T) {
	recorder, resp := handleError(t, apperrors.NewConflictError("friend request is not pending"))
	assert.Equal(t, http.StatusConflict, recorder.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "friend request is not pending", resp.Error.Message)
	assert.Equal(t, dto.ErrorCodeConflict, resp.Error.Code)
}

func TestHandleValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleValidationError(c, assert.AnError)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
}

func TestHandleValidationErrorFormatsFieldErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type form struct {
		Email string `validate:"required,email"`
	}
	err := validator.New().Struct(form{Email: "not-an-email"})
	require.Error(t, err)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	HandleValidationError(c, err)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "Email must be a valid email address", resp.Error.Message)
}
