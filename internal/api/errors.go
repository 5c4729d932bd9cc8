package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/api/shared"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/catalog"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, domain.ErrUnparseableQuantity),
		errors.Is(err, domain.ErrUnknownKind),
		errors.Is(err, domain.ErrInvalidSigFigs),
		errors.Is(err, domain.ErrUnitMismatch),
		errors.Is(err, catalog.ErrInvalidRecord):
		return http.StatusBadRequest

	// Arithmetic contract violations are bugs, not bad input.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var parseErr *domain.ParseError
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &parseErr):
		return fmt.Sprintf("Text is not a valid %s quantity", parseErr.Kind)

	case errors.Is(err, domain.ErrUnknownKind):
		return "Unknown quantity kind"

	case errors.Is(err, domain.ErrInvalidSigFigs):
		return "Invalid significant figure count"

	case errors.Is(err, domain.ErrUnitMismatch):
		return "Unit does not match the quantity kind"

	case errors.Is(err, catalog.ErrInvalidRecord):
		return "Invalid particle record"

	case errors.As(err, &maxBytes):
		return "Request body too large"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the status code and safe message for err, logging
// the redacted details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'ParseRequest.Text' Error:Field validation for 'Text' failed on the 'required' tag"
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
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too large"
	default:
		return "validation failed"
	}
}

// HandleDecodeError responds to a request body that could not be decoded.
func HandleDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, "Request body too large", err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
}
