package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
	"github.com/mesconnect/backend/internal/pkg/logger"
)

// HandleAPIError translates service errors into HTTP responses. Every
// controller funnels its errors through here so status codes stay
// consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
	}

	respond := func(status int, code dto.ErrorCode, fallback string) {
		if message == "" {
			message = fallback
		}
		c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountNotVerified):
		respond(http.StatusForbidden, dto.ErrorCodeAccountNotVerified, "Account is not verified")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respond(http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "Email already registered")
	case errors.Is(err, apperrors.ErrSelfFriendship):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Cannot friend yourself")
	case errors.Is(err, apperrors.ErrAlreadyFriends):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "Already friends")
	case errors.Is(err, apperrors.ErrFriendRequestPending):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "Friend request already pending")
	case errors.Is(err, apperrors.ErrUserBlocked):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Interaction with this user is blocked")
	case errors.Is(err, apperrors.ErrAlreadyMember):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "Already a member of this group")
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "Already registered for this event")
	case errors.Is(err, apperrors.ErrEventFull):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "Event has reached its capacity")
	case errors.Is(err, apperrors.ErrNotRegistered):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Not registered for this event")
	case errors.Is(err, apperrors.ErrAlreadyApplied):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "Already applied to this job")
	case errors.Is(err, apperrors.ErrInvalidStatusTransition):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "Invalid status transition")
	case errors.Is(err, apperrors.ErrConflict):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "Conflict")
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrFriendEdgeNotFound),
		errors.Is(err, apperrors.ErrGroupNotFound),
		errors.Is(err, apperrors.ErrConfessionNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrJobNotFound),
		errors.Is(err, apperrors.ErrNotificationNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleValidationError maps request binding failures to a 400 response.
// Field-level validation errors are rewritten into readable messages.
func HandleValidationError(c *gin.Context, err error) {
	message := err.Error()

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		parts := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			parts = append(parts, formatFieldError(fe))
		}
		message = strings.Join(parts, "; ")
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message),
	))
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "email":
		return fe.Field() + " must be a valid email address"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " failed " + fe.Tag() + " validation"
	}
}
