// Package logger builds the dashboard's *slog.Logger.
//
// New applies functional options over production-safe defaults (JSON, info
// level, stdout) and wraps the handler with a decorator that copies
// request-scoped values, such as the request ID, from the context into every
// record logged with a *Context method.
//
// The attribute helpers (Error, Component, UserID, Email, Event, State, Path
// and friends) keep key names consistent across packages. Helpers that take
// an optional value return an empty slog.Attr, which slog drops, when there is
// nothing to log.
package logger
