package utils

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrExpertNotFound     = errors.New("expert not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidInput       = errors.New("invalid input")
	ErrPlanParseFailed    = errors.New("failed to parse generated plan")
	ErrDatabaseError      = errors.New("database error")
)
