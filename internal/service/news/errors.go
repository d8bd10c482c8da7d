package news

import "errors"

var (
	// ErrValidation is returned when a subscription request is incomplete
	ErrValidation = errors.New("news.service: validation failed")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("news.service: internal error")
)
