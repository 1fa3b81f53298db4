package service

import (
	"errors"
	"fmt"
)

// Domain error kinds. Every error returned by this package matches exactly one
// of them under errors.Is.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

var (
	ErrQueryRequired       = fmt.Errorf("%w: search query is required", ErrInvalidInput)
	ErrPhoneNumberRequired = fmt.Errorf("%w: phone_number is required", ErrInvalidInput)
	ErrInvalidRating       = fmt.Errorf("%w: rating must be an integer between 1 and 5", ErrInvalidInput)
	ErrPhoneNotFound       = fmt.Errorf("%w: phone", ErrNotFound)
	ErrPhoneAlreadyExists  = fmt.Errorf("%w: phone number already exists", ErrConflict)
)

func tooLong(field string, max int) error {
	return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, max)
}

func invalidText(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, field, reason)
}

// storageError keeps the driver error reachable for logs while classifying it.
func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}
