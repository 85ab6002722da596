// Package gate decides, before any protected handler runs, whether a request
// may reach the protected area of the dashboard.
//
// A Gate classifies each request into one of three states:
//
//   - NoToken: the session cookie is absent or empty;
//   - TokenInvalid: a cookie is present but fails verification;
//   - TokenValid: the token verifies.
//
// Only requests whose path falls under the protected prefix are evaluated;
// the prefix matches itself and any path below it, never sibling paths that
// merely share the leading characters. NoToken and TokenInvalid produce the
// same redirect to the login page with the original path in the callback
// query parameter. TokenValid requests proceed untouched: the gate never
// forwards claims to the handler.
//
// The gate reads the cookie straight from the raw Cookie header and depends
// only on a token Verifier, so the same code runs in-process as chi
// middleware or in a standalone edge process in front of the application
// (see NewProxy).
package gate
