// Package auth verifies login credentials against the user store.
//
// Authenticator.Login normalises the login identifier, looks the user up
// through a CredentialStore and compares the submitted password with the
// stored bcrypt hash. Unknown accounts and wrong passwords both return
// ErrInvalidCredentials, and an unknown account still costs one bcrypt
// comparison, so callers cannot tell the two apart. Store failures are logged
// and reported as ErrStoreUnavailable.
//
// On success Login returns the jwt.Identity to embed in the session token.
package auth
