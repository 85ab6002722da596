package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/dashboard/pkg/cookie"
)

// Transport moves the session token between the response and the next request.
type Transport interface {
	// GetToken returns ErrNoSession when the request carries no token.
	GetToken(r *http.Request) (string, error)
	SetToken(w http.ResponseWriter, token string, ttl time.Duration)
	ClearToken(w http.ResponseWriter)
}

// CookieTransport implements Transport using a single named cookie.
type CookieTransport struct {
	cookies *cookie.Manager
	reader  cookie.Reader
	name    string
}

// NewCookieTransport creates a cookie transport. A nil reader selects
// cookie.NewFallbackReader.
func NewCookieTransport(cookies *cookie.Manager, name string, reader cookie.Reader) *CookieTransport {
	if cookies == nil {
		cookies = cookie.New()
	}
	if name == "" {
		name = DefaultCookieName
	}
	if reader == nil {
		reader = cookie.NewFallbackReader()
	}
	return &CookieTransport{cookies: cookies, reader: reader, name: name}
}

// Name returns the cookie name.
func (t *CookieTransport) Name() string {
	return t.name
}

func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	token, err := t.reader.Read(r, t.name)
	if errors.Is(err, cookie.ErrNotFound) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// SetToken writes the token with Max-Age equal to ttl.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) {
	t.cookies.Set(w, t.name, token, cookie.WithTTL(ttl))
}

func (t *CookieTransport) ClearToken(w http.ResponseWriter) {
	t.cookies.Delete(w, t.name)
}
