package utils

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrForbidden       = errors.New("forbidden")

	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account has been deactivated")
	ErrUserNotFound       = errors.New("user not found")

	ErrUnknownProvider = errors.New("invalid provider")
	ErrProviderFailure = errors.New("identity provider exchange failed")
	ErrMissingEmail    = errors.New("identity provider returned no email")

	ErrProductNotFound = errors.New("product not found")
	ErrProductInactive = errors.New("product is no longer active")

	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrOrderNotPayable   = errors.New("order cannot accept payments")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
