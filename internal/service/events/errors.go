package events

import "errors"

var (
	// ErrEventNotFound is returned when the requested event does not exist
	ErrEventNotFound = errors.New("events.service: event not found")

	// ErrValidation is returned when an event update is incomplete
	ErrValidation = errors.New("events.service: validation failed")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("events.service: internal error")
)
