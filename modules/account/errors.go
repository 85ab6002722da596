package account

import "errors"

var (
	ErrNilAuthenticator = errors.New("account: nil authenticator")
	ErrNilSessions      = errors.New("account: nil session manager")
)

// Client-facing messages.
const (
	msgLoginSuccessful    = "Login successful"
	msgMissingCredentials = "Email and password are required."
	msgInvalidCredentials = "Invalid credentials."
	msgServerError        = "Server error"
	msgMethodNotAllowed   = "Method not allowed"
	msgInvalidBody        = "Invalid request body."
	msgLoggedOut          = "Logged out"
)
