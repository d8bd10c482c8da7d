package sheets

import "errors"

var (
	// ErrSheetNotFound is returned when the spreadsheet has no sheet with
	// the configured gid
	ErrSheetNotFound = errors.New("sheets client: sheet not found")

	// ErrMissingHeaders is returned when the booking sheet lacks one of the
	// required header columns
	ErrMissingHeaders = errors.New("sheets client: required headers missing")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("sheets client: internal error")

	// ErrInvalidResponse is returned on an unexpected API response
	ErrInvalidResponse = errors.New("sheets client: invalid response")
)
