package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the root of all lookups that yield nothing
	ErrNotFound = errors.New("not found")

	// ErrCollectionNotFound is returned when the resolver finds no candidate collection
	ErrCollectionNotFound = fmt.Errorf("collection %w", ErrNotFound)

	// ErrMetadataNotFound is returned when no cached metadata matches the requested NFT
	ErrMetadataNotFound = fmt.Errorf("nft metadata %w", ErrNotFound)

	// ErrMissingRequiredField is returned when a provider document lacks a required field
	ErrMissingRequiredField = errors.New("missing required field")
)

// ValidationError is returned when user input is malformed
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
