package calendar

import "errors"

var (
	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("calendar client: internal error")

	// ErrInvalidResponse is returned on an unexpected API response
	ErrInvalidResponse = errors.New("calendar client: invalid response")
)
