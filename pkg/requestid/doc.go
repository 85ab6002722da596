// Package requestid tags every request with a correlation identifier.
//
// Middleware reuses a well-formed X-Request-ID header sent by a trusted
// proxy, or generates a time-ordered UUID otherwise, stores the value in the
// request context and echoes it in the response header. LoggerExtractor
// plugs the identifier into pkg/logger so every record logged with the
// request context carries it.
package requestid
