// Package common defines sentinel errors shared across the client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors (no response from the backend).
	ErrUnavailable = errors.New("server unavailable")

	// Backend rejection errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)
