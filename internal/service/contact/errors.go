package contact

import "errors"

var (
	// ErrValidation is returned when a contact message is incomplete
	ErrValidation = errors.New("contact.service: validation failed")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("contact.service: internal error")
)
