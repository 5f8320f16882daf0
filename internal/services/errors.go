package services

import "errors"

// Domain errors surfaced to handlers. Handlers translate these into
// HTTP status codes with errors.Is, so wrapped variants still match.
var (
	ErrEmptyCart          = errors.New("no order items")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrItemNotFound       = errors.New("item not found")
	ErrItemUnavailable    = errors.New("item is not available")
	ErrCanteenNotFound    = errors.New("canteen not found")
	ErrCanteenExists      = errors.New("owner already has a canteen")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrInvalidStatusValue = errors.New("invalid status value")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrEmailTaken         = errors.New("account already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRoleMismatch       = errors.New("account is not registered under this role")
	ErrInvalidRole        = errors.New("invalid role selected")
)
