// Package sentinel holds the storage facts stores report and services translate.
// Validation failures never use these; they are built with pkg/domain-errors.
package sentinel

import "errors"

var (
	// ErrNotFound means the row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a compare-and-set write found the row in another state.
	ErrConflict = errors.New("conflict")
	// ErrAlreadyUsed means a unique value (display name, enlistment link,
	// grant) is already taken.
	ErrAlreadyUsed = errors.New("already used")
)
