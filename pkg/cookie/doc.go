// Package cookie writes and reads the HTTP cookies that carry the dashboard
// session.
//
// # Overview
//
// The Manager type writes cookies with a fixed set of default attributes
// (Path, HttpOnly, SameSite, Secure) that individual calls may override.
// Delete writes an immediately expiring cookie with the same attributes so the
// browser removes it.
//
// Reading is split in two sources that agree on cookie name matching and value
// encoding:
//
//   - JarReader reads from a request-scoped Jar that Middleware parses once
//     per request and stores in the request context;
//   - HeaderReader scans the raw Cookie request header directly. It needs
//     nothing but the request, which makes it usable in an edge process.
//
// NewFallbackReader composes the two: the jar is consulted first and the raw
// header only when no jar was installed (ErrJarUnavailable). A cookie that is
// simply absent yields ErrNotFound from either source and never triggers the
// fallback. Empty values are reported as absent.
//
// # Usage
//
//	mgr := cookie.New(cookie.WithSecure(isProduction))
//	mgr.Set(w, "auth_token", token, cookie.WithMaxAge(604800))
//
//	r := cookie.NewFallbackReader()
//	token, err := r.Read(req, "auth_token")
//	if errors.Is(err, cookie.ErrNotFound) {
//	    // not signed in
//	}
package cookie
