package application

import "errors"

// Failure taxonomy surfaced by the services. Handlers translate these to
// HTTP statuses at the request boundary; nothing here crosses it as a panic.
var (
	// ErrValidation marks a missing or out-of-range field (400).
	ErrValidation = errors.New("validation failed")
	// ErrDuplicateIdentity marks a username or email already registered (400).
	ErrDuplicateIdentity = errors.New("username or email already taken")
	// ErrInvalidCredential marks a failed username/password check (401).
	ErrInvalidCredential = errors.New("invalid credentials")
	// ErrUnauthenticated marks a request with no user bound to the session (401).
	ErrUnauthenticated = errors.New("you must be signed in")
	// ErrNotAuthorized marks an acting user that is not the entity owner (403).
	ErrNotAuthorized = errors.New("you are not the author")

	ErrUserNotFound       = errors.New("user not found")
	ErrCampgroundNotFound = errors.New("campground not found")
	ErrReviewNotFound     = errors.New("review not found")
)
