// Package session connects the token codec to the session cookie.
//
// Manager issues a session after a successful login by minting a token and
// writing it to the auth cookie, and clears the session on logout. Reader is
// the application-side view: it re-verifies the cookie on each request and
// surfaces the identity to handlers. Reader is for personalisation only;
// access control happens earlier, in the gate.
//
// Both sit on a Transport. CookieTransport writes through a cookie.Manager
// and reads through a cookie.Reader, by default the jar-first reader with
// raw Cookie header fallback.
package session
