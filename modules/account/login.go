package account

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/dashboard/handler"
	"github.com/dmitrymomot/dashboard/pkg/auth"
	"github.com/dmitrymomot/dashboard/pkg/logger"
)

type loginRequest struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RedirectTo string `json:"redirectTo" form:"redirectTo"`
}

// LoginResponse is the success body of POST /api/login.
type LoginResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

func (s *Service) login(ctx handler.Context, req loginRequest) handler.Response {
	r := ctx.Request()

	id, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			s.observer.ObserveLogin(ResultMissingCredentials)
			return handler.NoStore(http.StatusBadRequest, handler.Message(msgMissingCredentials))
		case errors.Is(err, auth.ErrInvalidCredentials):
			s.observer.ObserveLogin(ResultInvalidCredentials)
			s.logger.WarnContext(ctx, "login failed",
				logger.Email(auth.NormalizeEmail(req.Email)),
				logger.ClientIP(s.clientIP(r)),
			)
			return handler.NoStore(http.StatusUnauthorized, handler.Message(msgInvalidCredentials))
		default:
			s.observer.ObserveLogin(ResultStoreUnavailable)
			s.logger.ErrorContext(ctx, "login unavailable",
				logger.ClientIP(s.clientIP(r)),
				logger.Error(err),
			)
			return handler.NoStore(http.StatusInternalServerError, handler.Message(msgServerError))
		}
	}

	if _, err := s.sessions.Issue(ctx.ResponseWriter(), id); err != nil {
		s.observer.ObserveLogin(ResultSessionFailed)
		s.logger.ErrorContext(ctx, "issue session", logger.UserID(id.Subject), logger.Error(err))
		return handler.NoStore(http.StatusInternalServerError, handler.Message(msgServerError))
	}

	s.observer.ObserveLogin(ResultSuccess)
	s.logger.InfoContext(ctx, "user logged in",
		logger.UserID(id.Subject),
		logger.ClientIP(s.clientIP(r)),
	)

	return handler.NoStore(http.StatusOK, LoginResponse{
		Message:  msgLoginSuccessful,
		Redirect: SafeRedirect(req.RedirectTo, DefaultRedirect),
	})
}

func (s *Service) logout(ctx handler.Context, _ struct{}) handler.Response {
	s.sessions.Clear(ctx.ResponseWriter())
	s.observer.ObserveLogout()
	s.logger.DebugContext(ctx, "session cleared", logger.ClientIP(s.clientIP(ctx.Request())))

	return handler.NoStore(http.StatusOK, LoginResponse{
		Message:  msgLoggedOut,
		Redirect: s.loginPath,
	})
}

// SafeRedirect returns target when it is a local absolute path, otherwise fallback.
// Protocol-relative ("//host"), backslash and scheme-bearing targets are refused.
func SafeRedirect(target, fallback string) string {
	if target == "" || target[0] != '/' {
		return fallback
	}
	if strings.HasPrefix(target, "//") || strings.ContainsAny(target, "\\\r\n") {
		return fallback
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return target
}
