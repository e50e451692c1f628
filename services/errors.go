package services

import (
	"errors"
)

// Absent and not-owned resources are indistinguishable on purpose: a
// caller probing someone else's ids always gets the same not-found.
var (
	ErrMealNotFound       = errors.New("meal not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrFoodNotFound       = errors.New("no matching food found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFood            = errors.New("no food detected in image")
	ErrVisionUnavailable  = errors.New("food recognition is unavailable")
)

// ValidationError carries a message safe to return to the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(msg string) error {
	return &ValidationError{Msg: msg}
}
