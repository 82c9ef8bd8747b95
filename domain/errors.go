package domain

import "errors"

// Authentication errors
var (
	ErrIdentityExists      = errors.New("identity already registered")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountNotVerified  = errors.New("account not verified")
	ErrInvalidRole         = errors.New("invalid role")
)

// Verification errors
var (
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")
	ErrResendThrottled      = errors.New("code resend throttled")
)

// Session errors
var (
	ErrSessionExpired = errors.New("session expired")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Appointment errors
var (
	ErrDoctorUnavailable   = errors.New("doctor is not available")
	ErrSlotTaken           = errors.New("appointment slot already taken")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTransition   = errors.New("invalid appointment transition")
	ErrForbidden           = errors.New("operation not permitted")
)

// Notification errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)
