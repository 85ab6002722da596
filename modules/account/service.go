package account

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/dashboard/handler"
	"github.com/dmitrymomot/dashboard/pkg/binder"
	"github.com/dmitrymomot/dashboard/pkg/jwt"
	"github.com/dmitrymomot/dashboard/pkg/logger"
)

// Authenticator checks credentials.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (jwt.Identity, error)
}

// Sessions issues and clears session cookies.
type Sessions interface {
	Issue(w http.ResponseWriter, id jwt.Identity) (string, error)
	Clear(w http.ResponseWriter)
}

// Observer receives login outcomes and logouts.
type Observer interface {
	ObserveLogin(result string)
	ObserveLogout()
}

// Login results reported to Observer.
const (
	ResultSuccess            = "success"
	ResultMissingCredentials = "missing_credentials"
	ResultInvalidCredentials = "invalid_credentials"
	ResultStoreUnavailable   = "store_unavailable"
	ResultSessionFailed      = "session_failed"
)

const (
	DefaultRedirect  = "/dashboard"
	DefaultLoginPath = "/login"
	CallbackParam    = "callbackUrl"
)

type Option func(*Service)

func WithObserver(o Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.observer = o
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

// WithLoginPath sets the path of the login page and the logout redirect.
func WithLoginPath(path string) Option {
	return func(s *Service) {
		if strings.HasPrefix(path, "/") {
			s.loginPath = path
		}
	}
}

// WithClientIP sets the function used to attach the caller address to login logs.
func WithClientIP(fn func(*http.Request) string) Option {
	return func(s *Service) {
		if fn != nil {
			s.clientIP = fn
		}
	}
}

// Service implements the login and logout endpoints.
type Service struct {
	auth      Authenticator
	sessions  Sessions
	observer  Observer
	logger    *slog.Logger
	clientIP  func(*http.Request) string
	loginPath string
}

func NewService(auth Authenticator, sessions Sessions, opts ...Option) (*Service, error) {
	if auth == nil {
		return nil, ErrNilAuthenticator
	}
	if sessions == nil {
		return nil, ErrNilSessions
	}

	s := &Service{
		auth:      auth,
		sessions:  sessions,
		observer:  noopObserver{},
		logger:    logger.Discard(),
		clientIP:  func(r *http.Request) string { return r.RemoteAddr },
		loginPath: DefaultLoginPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("account"))

	return s, nil
}

// Routes registers the account routes on r.
func (s *Service) Routes(r chi.Router) {
	r.Get(s.loginPath, s.loginPage)

	r.Route("/api/login", func(r chi.Router) {
		r.MethodNotAllowed(methodNotAllowed)
		r.Post("/", handler.Wrap(s.login,
			handler.WithBinders[handler.Context, loginRequest](
				binder.JSON(binder.AllowUnknownFields()),
				binder.Form(),
			),
			handler.WithErrorHandler[handler.Context, loginRequest](s.errorHandler),
		))
	})

	r.Route("/api/logout", func(r chi.Router) {
		r.MethodNotAllowed(methodNotAllowed)
		r.Post("/", handler.Wrap(s.logout,
			handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		))
	})
}

// errorHandler reports bind failures as 400 and everything else as a
// generic server error.
func (s *Service) errorHandler(ctx handler.Context, err error) {
	code, msg := http.StatusInternalServerError, msgServerError
	var httpErr handler.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code == http.StatusBadRequest {
		code, msg = http.StatusBadRequest, msgInvalidBody
	} else {
		s.logger.ErrorContext(ctx, "account request failed",
			logger.Path(ctx.Request().URL.Path),
			logger.Error(err),
		)
	}
	writeJSON(ctx.ResponseWriter(), code, handler.Message(msg))
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, handler.Message(msgMethodNotAllowed))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type noopObserver struct{}

func (noopObserver) ObserveLogin(string) {}
func (noopObserver) ObserveLogout()      {}
