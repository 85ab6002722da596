package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Config lists the headers trusted to carry the client address, in priority order.
type Config struct {
	Headers []string `env:"CLIENTIP_HEADERS" envDefault:"X-Forwarded-For,X-Real-IP" envSeparator:","`
}

// Resolver extracts client IPs from requests.
type Resolver struct {
	headers []string
}

// NewResolver returns a resolver that trusts headers in the order given.
// With no headers only RemoteAddr is used.
func NewResolver(headers ...string) *Resolver {
	clean := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			clean = append(clean, http.CanonicalHeaderKey(h))
		}
	}
	return &Resolver{headers: clean}
}

func NewFromConfig(cfg Config) *Resolver {
	return NewResolver(cfg.Headers...)
}

// IP returns the first valid address found, or "" when none is.
// For comma separated headers such as X-Forwarded-For the leftmost valid
// entry wins.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		for _, v := range r.Header.Values(h) {
			for part := range strings.SplitSeq(v, ",") {
				if ip := parse(part); ip != "" {
					return ip
				}
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

// Middleware stores the resolved address in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.IP(r))))
	})
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// LoggerExtractor returns a ContextExtractor for the logger
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
