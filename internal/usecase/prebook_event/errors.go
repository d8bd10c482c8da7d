package prebook_event

import "errors"

var (
	// ErrInvalidToken is returned when the booking link token cannot be
	// decoded into the expected fields
	ErrInvalidToken = errors.New("prebook_event: invalid token")

	// ErrEventNotFound is returned when the prebooked event does not exist
	ErrEventNotFound = errors.New("prebook_event: event not found")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("prebook_event: internal error")
)
