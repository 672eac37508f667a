package domain

import "errors"

// Auth errors.
var (
	// ErrMissingFields signals a request with required fields absent or empty.
	ErrMissingFields = errors.New("required fields missing")
	// ErrInvalidCredentials covers both unknown email and wrong password so a
	// caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	// ErrMissingSecret means the signing key is not configured; token issuance
	// is impossible until the process is reconfigured.
	ErrMissingSecret = errors.New("signing secret not configured")
)

// Inventory errors.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product already exists")
)
