package handlers

import (
	"errors"
	"net/http"

	"smart_canteen/internal/services"
)

// statusForError maps a domain error to an HTTP status code.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrCanteenNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrRoleMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrInvalidStatusValue),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrCanteenExists),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidRole):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
