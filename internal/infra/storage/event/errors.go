package event

import "errors"

var (
	// ErrEventNotFound is returned when no event exists for the given id
	ErrEventNotFound = errors.New("event.repository: event not found")

	// ErrNoCapacity is returned when a conditional counter increment found
	// no free spot left
	ErrNoCapacity = errors.New("event.repository: no capacity left")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("event.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("event.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("event.repository: failed to scan row")
)
