package session

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/dashboard/pkg/jwt"
	"github.com/dmitrymomot/dashboard/pkg/logger"
)

// Verifier checks a session token.
type Verifier interface {
	Verify(token string) (jwt.Identity, error)
}

// Reader resolves the identity of the current request inside the application.
type Reader struct {
	verifier  Verifier
	transport Transport
	logger    *slog.Logger
}

func NewReader(verifier Verifier, opts ...Option) (*Reader, error) {
	if verifier == nil {
		return nil, ErrNilCodec
	}
	o := newOptions(opts)
	return &Reader{verifier: verifier, transport: o.transport, logger: o.logger}, nil
}

// CurrentUser returns the verified identity for r. Any failure, including a
// missing cookie, yields false.
func (rd *Reader) CurrentUser(r *http.Request) (jwt.Identity, bool) {
	token, err := rd.transport.GetToken(r)
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			rd.logger.DebugContext(r.Context(), "session cookie unreadable", logger.Error(err))
		}
		return jwt.Identity{}, false
	}

	id, err := rd.verifier.Verify(token)
	if err != nil {
		rd.logger.DebugContext(r.Context(), "session token rejected",
			logger.Reason(rejectReason(err)),
			logger.Error(err),
		)
		return jwt.Identity{}, false
	}

	return id, true
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "expired"
	case errors.Is(err, jwt.ErrTamperedToken):
		return "tampered"
	case errors.Is(err, jwt.ErrMalformedToken):
		return "malformed"
	default:
		return "invalid"
	}
}
