package reconcile

import "errors"

var (
	// ErrUnusable is returned when the container storage is not accessible.
	ErrUnusable = errors.New("container invalid or storage not loaded")

	// ErrCountMismatch is returned when the post-write contents do not match the pre-write multiset.
	ErrCountMismatch = errors.New("item counts changed during sort")

	// ErrSizeChanged is returned when the container size changed mid-operation.
	ErrSizeChanged = errors.New("container size changed during sort")

	// ErrRollbackFailed is returned when the original layout could not be restored.
	ErrRollbackFailed = errors.New("rollback failed")
)
