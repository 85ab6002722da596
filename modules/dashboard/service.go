package dashboard

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/dashboard/pkg/jwt"
	"github.com/dmitrymomot/dashboard/pkg/logger"
	"github.com/dmitrymomot/dashboard/pkg/session"
)

// SessionReader resolves the identity of the current request.
type SessionReader interface {
	CurrentUser(r *http.Request) (jwt.Identity, bool)
}

// Verifier checks a raw session token.
type Verifier interface {
	Verify(token string) (jwt.Identity, error)
}

const defaultPrefix = "/dashboard"

type Option func(*Service)

// WithLoginURL sets the function building the login redirect for a path.
func WithLoginURL(fn func(path string) string) Option {
	return func(s *Service) {
		if fn != nil {
			s.loginURL = fn
		}
	}
}

func WithCookieName(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.cookieName = name
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// Service renders the dashboard layout and the debug endpoints.
type Service struct {
	reader     SessionReader
	verifier   Verifier
	loginURL   func(path string) string
	cookieName string
	logger     *slog.Logger
}

func NewService(reader SessionReader, verifier Verifier, opts ...Option) (*Service, error) {
	if reader == nil {
		return nil, ErrNilReader
	}
	if verifier == nil {
		return nil, ErrNilVerifier
	}

	s := &Service{
		reader:     reader,
		verifier:   verifier,
		loginURL:   defaultLoginURL,
		cookieName: session.DefaultCookieName,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("dashboard"))

	return s, nil
}

// Routes registers the dashboard and debug routes on r.
func (s *Service) Routes(r chi.Router) {
	r.Get(defaultPrefix, s.page)
	r.Get(defaultPrefix+"/*", s.page)

	r.Get("/api/debug-auth", s.debugAuth)
	r.Get("/api/debug-get-auth", s.debugGetAuth)
}

func defaultLoginURL(path string) string {
	return "/login?" + url.Values{"callbackUrl": {path}}.Encode()
}
