package services

import "errors"

// Failures in the onboarding flow are recovered at the handler boundary
// and surfaced as flash messages; none are fatal.
var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("email or password is incorrect")

	ErrOTPNotFound = errors.New("invalid OTP")
	ErrOTPExpired  = errors.New("OTP expired")

	ErrMissingPhone    = errors.New("phone number required")
	ErrPhoneTaken      = errors.New("phone number has already been used")
	ErrMissingDocument = errors.New("no document image uploaded")
	ErrAlreadyHost     = errors.New("you already have a host account")
	ErrAlreadyDriver   = errors.New("you already have a driver account")

	ErrSessionInvalid = errors.New("session expired or revoked")
)
