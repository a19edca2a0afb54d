package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/taskm-api/internal/api/shared"
	"github.com/phrazzld/taskm-api/internal/domain"
	"github.com/phrazzld/taskm-api/internal/service/auth"
	"github.com/phrazzld/taskm-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors. A task owned by someone else maps here too, so
	// clients cannot probe for existence.
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Duplicate values surface as bad requests
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrUsernameExists),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidDueDate),
		errors.Is(err, store.ErrInvalidEntity),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	// Duplicate values
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	// Bad due date carries its exact wire message
	case errors.Is(err, domain.ErrInvalidDueDate):
		return "bad due_date format"

	// Domain validation errors carry a field-scoped message that is safe
	// to show
	case isDomainValidationError(err):
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)
		}
		return "Validation error"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}

// isDomainValidationError reports whether err wraps a domain.ValidationError
// or one of the domain's validation sentinels.
func isDomainValidationError(err error) bool {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return true
	}

	for _, sentinel := range []error{
		domain.ErrEmptyUsername,
		domain.ErrEmptyEmail,
		domain.ErrInvalidEmail,
		domain.ErrPasswordTooShort,
		domain.ErrPasswordTooLong,
		domain.ErrEmptyPassword,
		domain.ErrEmptyTitle,
		domain.ErrEmptyOwner,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// HandleAPIError maps err to a status code and safe message and writes the
// response, logging the full error. An empty fallbackMessage uses the mapped
// safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	statusCode := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if statusCode == http.StatusInternalServerError && fallbackMessage != "" {
		message = fallbackMessage
	}
	shared.RespondWithErrorAndLog(w, r, statusCode, message, err)
}

// SanitizeValidationError removes sensitive details from validator errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'LoginRequest.Email' Error:Field validation for
	// 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
