package service

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by the services. Callers match them with errors.Is;
// the wrapped message says what was missing or wrong.
var (
	ErrIDRequired      = errors.New("id is required")
	ErrReaderNil       = errors.New("reader is nil")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrUpstream        = errors.New("upstream failure")
	ErrPersistence     = errors.New("persistence failure")
	ErrConflict        = errors.New("conflict")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInactiveUser    = errors.New("inactive user")
)

func notFound(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
