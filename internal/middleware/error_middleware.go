package middleware

import (
	"errors"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/logger"
)

// HandleAPIError maps an error to its HTTP status and error code and writes the
// error envelope. Unknown errors never leak their text to the client.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Request failed with internal error")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, messageOf(err, "Please log in"))
	case apperrors.Is(err, apperrors.ErrTokenExpired, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Session is no longer valid")
	case errors.Is(err, apperrors.ErrTooManyRequests):
		return http.StatusTooManyRequests, dto.NewErrorDetail(dto.ErrorCodeTooManyRequests, "Too many requests, please try again later")

	case errors.Is(err, apperrors.ErrInvalidCGPA):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidCGPA, messageOf(err, "")).WithField("cgpa")
	case errors.Is(err, apperrors.ErrWeakPassword):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeWeakPassword, messageOf(err, "")).WithField("password")
	case errors.Is(err, apperrors.ErrPastDeadline):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodePastDeadline, messageOf(err, "")).WithField("deadline")
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, messageOf(err, "Validation failed"))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email is already registered").WithField("email")
	case errors.Is(err, apperrors.ErrAlreadyApplied):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeAlreadyApplied, "You already applied for this job")
	case apperrors.Is(err, apperrors.ErrStudentHasApplications, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, messageOf(err, ""))

	case errors.Is(err, apperrors.ErrNotEligible):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeNotEligible, "You are not eligible for this position")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "You do not have access to this drive")

	case errors.Is(err, apperrors.ErrDriveNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "This job is no longer available")
	case apperrors.Is(err, apperrors.ErrProfileNotFound, apperrors.ErrUserNotFound, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageOf(err, "Resource not found"))

	case errors.Is(err, apperrors.ErrStorageFailure):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}
}

// messageOf returns the error text with its first letter upper-cased, or fallback when empty.
func messageOf(err error, fallback string) string {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return fallback
	}
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}
