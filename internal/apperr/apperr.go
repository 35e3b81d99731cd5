// Package apperr defines the sentinel errors the HTTP handlers translate to
// status codes. Components wrap these with fmt.Errorf("...: %w", ...) so the
// handler boundary can match with errors.Is while keeping the detail string.
package apperr

import "errors"

var (
	// ErrNotFound marks a missing script or snapshot file.
	ErrNotFound = errors.New("not found")

	// ErrTimeout marks an external command that exceeded its bound.
	ErrTimeout = errors.New("timed out")

	// ErrConfigMissing marks a required environment value that is absent.
	ErrConfigMissing = errors.New("configuration missing")

	// ErrRemoteStorage marks a failure reported by the object store.
	ErrRemoteStorage = errors.New("remote storage error")
)
