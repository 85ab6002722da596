package gate

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/dashboard/pkg/cookie"
	"github.com/dmitrymomot/dashboard/pkg/jwt"
	"github.com/dmitrymomot/dashboard/pkg/logger"
)

// State is the outcome of evaluating a protected request.
type State int

const (
	NoToken State = iota
	TokenInvalid
	TokenValid
)

func (s State) String() string {
	switch s {
	case NoToken:
		return "no_token"
	case TokenInvalid:
		return "token_invalid"
	case TokenValid:
		return "token_valid"
	default:
		return "unknown"
	}
}

// Verifier checks a session token.
type Verifier interface {
	Verify(token string) (jwt.Identity, error)
}

// Observer is notified of every gate decision on a protected path.
type Observer interface {
	ObserveGate(state State)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(State)

func (f ObserverFunc) ObserveGate(s State) { f(s) }

type Option func(*Gate)

func WithConfig(cfg Config) Option {
	return func(g *Gate) {
		g.cfg = cfg
	}
}

func WithObserver(o Observer) Option {
	return func(g *Gate) {
		g.observer = o
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithCookieReader replaces the raw-header cookie source. Intended for tests.
func WithCookieReader(r cookie.Reader) Option {
	return func(g *Gate) {
		if r != nil {
			g.cookies = r
		}
	}
}

// Gate guards the protected route prefix.
type Gate struct {
	verifier Verifier
	cookies  cookie.Reader
	cfg      Config
	observer Observer
	logger   *slog.Logger
}

func New(verifier Verifier, opts ...Option) (*Gate, error) {
	if verifier == nil {
		return nil, ErrNilVerifier
	}

	g := &Gate{
		verifier: verifier,
		cookies:  cookie.HeaderReader{},
		cfg:      DefaultConfig(),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.cfg.ProtectedPrefix = strings.TrimSuffix(g.cfg.ProtectedPrefix, "/")
	g.logger = g.logger.With(logger.Component("gate"))

	return g, nil
}

// Protects reports whether path is the protected prefix or lies below it.
func (g *Gate) Protects(path string) bool {
	prefix := g.cfg.ProtectedPrefix
	if prefix == "" {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// Evaluate classifies r. It does not check whether the path is protected.
func (g *Gate) Evaluate(r *http.Request) State {
	token, err := g.cookies.Read(r, g.cfg.CookieName)
	if err != nil {
		if !errors.Is(err, cookie.ErrNotFound) {
			g.logger.DebugContext(r.Context(), "session cookie unreadable", logger.Error(err))
		}
		return NoToken
	}

	if _, err := g.verifier.Verify(token); err != nil {
		g.logger.DebugContext(r.Context(), "session token rejected", logger.Path(r.URL.Path), logger.Error(err))
		return TokenInvalid
	}

	return TokenValid
}

// LoginURL returns the login location that brings the user back to path.
func (g *Gate) LoginURL(path string) string {
	q := url.Values{}
	q.Set(g.cfg.CallbackParam, path)
	return g.cfg.LoginPath + "?" + q.Encode()
}

// Middleware redirects unauthenticated requests for protected paths to the
// login page and passes everything else through unchanged.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.Protects(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		state := g.Evaluate(r)
		if g.observer != nil {
			g.observer.ObserveGate(state)
		}
		g.logger.DebugContext(r.Context(), "gate decision",
			logger.State(state.String()),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
		)

		if state != TokenValid {
			w.Header().Set("Location", g.LoginURL(r.URL.Path))
			w.Header().Set("Cache-Control", "no-store")
			w.WriteHeader(http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
