package pwgen

import "errors"

var (
	// ErrInvalidLength is returned when the requested length is not positive.
	ErrInvalidLength = errors.New("password length must be greater than zero")

	// ErrInvalidCount is returned by GenerateN for a non-positive count.
	ErrInvalidCount = errors.New("password count must be greater than zero")

	// ErrMaxAttemptsExceeded is returned when a bounded generator gives up.
	ErrMaxAttemptsExceeded = errors.New("no password satisfied the request within the attempt limit")

	// ErrCanceled wraps the context error when generation is interrupted.
	ErrCanceled = errors.New("password generation canceled")
)
