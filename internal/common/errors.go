// Package common defines shared constants and sentinel errors used across
// client and server layers of Taskboard. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors (malformed or missing input).
	ErrValidation = errors.New("validation error")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")
)
