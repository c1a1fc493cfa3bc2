package chatapp_errors

import (
	"errors"
)

// Common errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrInvalidOTP       = errors.New("invalid or expired OTP")
	ErrDuplicateAccount = errors.New("user already exists")
	ErrDelivery         = errors.New("failed to send OTP")
	ErrPersistence      = errors.New("storage failure")
	ErrAlreadyExists    = errors.New("already exists")
	ErrUnauthorized     = errors.New("unauthorized")
)
