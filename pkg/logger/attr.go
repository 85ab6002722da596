package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the package or subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names what happened, e.g. "login.succeeded".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// UserID records the user identifier under the key "user_id".
// If id is empty, it returns an empty Attr.
func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

// Email records a login identifier under the key "email".
// If email is empty, it returns an empty Attr.
func Email(email string) slog.Attr {
	if email == "" {
		return slog.Attr{}
	}
	return slog.String("email", email)
}

// State records a gate decision.
func State(state string) slog.Attr {
	return slog.String("state", state)
}

func Path(path string) slog.Attr {
	return slog.String("path", path)
}

func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// ClientIP records the remote address under the key "client_ip".
// If ip is empty, it returns an empty Attr.
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

// Reason records why a request was rejected.
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
