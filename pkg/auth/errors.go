package auth

import "errors"

var (
	// ErrUserNotFound is returned by a CredentialStore when no user has the given identifier.
	ErrUserNotFound = errors.New("user not found")

	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStoreUnavailable   = errors.New("credential store unavailable")

	ErrNilStore = errors.New("nil credential store")
)
