package session

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/dashboard/pkg/jwt"
	"github.com/dmitrymomot/dashboard/pkg/logger"
)

// Codec mints and verifies session tokens.
type Codec interface {
	Mint(id jwt.Identity) (string, error)
	Verify(token string) (jwt.Identity, error)
	TTL() time.Duration
}

// Option configures Manager and Reader.
type Option func(*options)

type options struct {
	transport Transport
	logger    *slog.Logger
}

func WithTransport(t Transport) Option {
	return func(o *options) {
		if t != nil {
			o.transport = t
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.transport == nil {
		o.transport = NewCookieTransport(nil, DefaultCookieName, nil)
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}
	o.logger = o.logger.With(logger.Component("session"))
	return o
}

// Manager issues and clears sessions. It holds no per-session state.
type Manager struct {
	codec     Codec
	transport Transport
	logger    *slog.Logger
}

func NewManager(codec Codec, opts ...Option) (*Manager, error) {
	if codec == nil {
		return nil, ErrNilCodec
	}
	o := newOptions(opts)
	return &Manager{codec: codec, transport: o.transport, logger: o.logger}, nil
}

// Issue mints a token for id and writes the session cookie. The cookie lifetime
// equals the token lifetime.
func (m *Manager) Issue(w http.ResponseWriter, id jwt.Identity) (string, error) {
	token, err := m.codec.Mint(id)
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	m.transport.SetToken(w, token, m.codec.TTL())
	return token, nil
}

// Clear expires the session cookie. Calling it without a session is harmless.
func (m *Manager) Clear(w http.ResponseWriter) {
	m.transport.ClearToken(w)
}

// Token returns the raw session token sent with r, or ErrNoSession.
func (m *Manager) Token(r *http.Request) (string, error) {
	return m.transport.GetToken(r)
}
