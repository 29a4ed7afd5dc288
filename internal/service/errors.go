package service

import (
	"errors"
	"fmt"
)

// The four failure categories every paid operation can surface. Handlers
// map them to HTTP statuses; nothing below this layer retries.
var (
	// ErrValidation: bad input, rejected before any credit check. No side
	// effects.
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientCredits: balance too low, rejected after validation
	// and before the AI call.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrUpstream: the AI gateway was unreachable, returned a non-2xx, or
	// produced an unparseable response.
	ErrUpstream = errors.New("upstream failure")

	// ErrPersistence: a storage write failed.
	ErrPersistence = errors.New("persistence failure")

	// ErrNotFound: the referenced record does not exist or is not owned by
	// the caller.
	ErrNotFound = errors.New("not found")
)

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func upstreamErr(err error) error {
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}

func persistenceErr(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
