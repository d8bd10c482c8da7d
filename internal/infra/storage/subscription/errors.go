package subscription

import "errors"

var (
	// ErrSubscriptionNotFound is returned when no subscription exists for
	// the given email address
	ErrSubscriptionNotFound = errors.New("subscription.repository: subscription not found")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("subscription.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("subscription.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("subscription.repository: failed to scan row")
)
