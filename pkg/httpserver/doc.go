// Package httpserver runs an http.Handler with graceful shutdown and
// provides liveness and readiness probe handlers.
//
// Run listens on the configured address and blocks until the context is
// cancelled or Shutdown is called, then drains in-flight requests for at most
// the shutdown timeout. Signal handling belongs to the caller, typically via
// signal.NotifyContext in the command that starts the server.
package httpserver
