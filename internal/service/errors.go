package service

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong password
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInactiveUser is returned when a disabled user tries to log in
	ErrInactiveUser = errors.New("user account is inactive")

	// ErrValidation wraps input rejected by business validation
	ErrValidation = errors.New("validation failed")

	// ErrAccountNotFound is returned when an account does not exist or belongs to another user
	ErrAccountNotFound = errors.New("account not found")
)
