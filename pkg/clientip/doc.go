// Package clientip determines the address of the client behind a request.
//
// A Resolver checks a configured list of proxy headers in order and falls
// back to the connection's remote address. Only the headers set by proxies
// you control should be trusted; the defaults match a single reverse proxy
// (or the dashboard edge) that appends to X-Forwarded-For. The resolved
// address is used in login audit logs.
package clientip
