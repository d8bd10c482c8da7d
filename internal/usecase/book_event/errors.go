package book_event

import "errors"

var (
	// ErrValidation is returned when the booking request is incomplete
	ErrValidation = errors.New("book_event: validation failed")

	// ErrEventNotFound is returned when the booked event does not exist
	ErrEventNotFound = errors.New("book_event: event not found")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("book_event: internal error")
)
