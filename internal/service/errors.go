package service

import "errors"

var (
	// ErrInvalidDataProvided wraps a validation failure detected before any
	// request is sent.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrKnowledgeNotFound is returned when the backend reports a missing
	// knowledge entry.
	ErrKnowledgeNotFound = errors.New("knowledge entry not found")

	// ErrBackendUnavailable is returned when the backend answered with a
	// gateway or availability failure.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
