package mail

import "errors"

var (
	// ErrNoAccount is returned when no mail account matches the requested
	// topic or address
	ErrNoAccount = errors.New("mail: no matching account")

	// ErrInvalidAccount is returned when an account configuration cannot be
	// parsed
	ErrInvalidAccount = errors.New("mail: invalid account configuration")

	// ErrSend is returned when the SMTP conversation fails
	ErrSend = errors.New("mail: sending failed")
)
