package google

import "errors"

var (
	// ErrInvalidKey is returned when the service account key cannot be parsed
	ErrInvalidKey = errors.New("google auth: invalid service account key")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("google auth: internal error")

	// ErrTokenExchange is returned when the token endpoint rejects the request
	ErrTokenExchange = errors.New("google auth: token exchange failed")
)
