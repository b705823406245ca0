// Package apperr defines the error taxonomy returned by the service layer.
// Controllers map these sentinels to HTTP statuses; nothing else is ever
// surfaced across the API boundary as an opaque failure.
package apperr

import "errors"

var (
	// ErrAuthRequired is returned when an operation is attempted without a user id.
	ErrAuthRequired = errors.New("authentication required")

	// ErrInvalidAnswer is returned for empty or whitespace-only answer text.
	ErrInvalidAnswer = errors.New("answer text must not be empty")

	// ErrDuplicateAnswer is returned when a question already has an answer in
	// the session. The first submitted answer is kept.
	ErrDuplicateAnswer = errors.New("question already answered in this session")

	// ErrSessionNotFound is returned when a session does not exist or belongs
	// to a different user.
	ErrSessionNotFound = errors.New("interview session not found")

	// ErrNotFound is the generic missing-record error for non-session lookups.
	ErrNotFound = errors.New("record not found")

	// ErrStoreUnavailable wraps datastore failures that survived a retry.
	ErrStoreUnavailable = errors.New("datastore unavailable")
)
