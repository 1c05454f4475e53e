// internal/services/errors.go
package services

import "errors"

// Mutation error taxonomy. Handlers translate these into user-visible
// messages; nothing here retries automatically.
var (
	// ErrValidation rejects a request before any network call.
	ErrValidation = errors.New("validation failed")
	// ErrPersistence reports a failed write to the remote store.
	ErrPersistence = errors.New("persistence failed")
	// ErrNotFound reports that an update or delete target vanished.
	ErrNotFound = errors.New("book not found")
)
