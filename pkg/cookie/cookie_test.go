package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dashboard/pkg/cookie"
)

func singleCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestManagerSetDefaults(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	rec := httptest.NewRecorder()
	m.Set(rec, "auth_token", "abc", cookie.WithTTL(7*24*time.Hour))

	c := singleCookie(t, rec)
	assert.Equal(t, "auth_token", c.Name)
	assert.Equal(t, "abc", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, 604800, c.MaxAge)
}

func TestManagerSetOverrides(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecure(true), cookie.WithDomain("example.com"))
	rec := httptest.NewRecorder()
	m.Set(rec, "prefs", "dark", cookie.WithPath("/settings"), cookie.WithHTTPOnly(false), cookie.WithMaxAge(60))

	c := singleCookie(t, rec)
	assert.Equal(t, "/settings", c.Path)
	assert.Equal(t, "example.com", c.Domain)
	assert.True(t, c.Secure)
	assert.False(t, c.HttpOnly)
	assert.Equal(t, 60, c.MaxAge)

	// Per-call options never leak into the defaults.
	assert.Equal(t, "/", m.Defaults().Path)
	assert.True(t, m.Defaults().HttpOnly)
}

func TestManagerDelete(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecure(true))
	rec := httptest.NewRecorder()
	m.Delete(rec, "auth_token")

	header := rec.Header().Get("Set-Cookie")
	assert.Contains(t, header, "auth_token=;")
	assert.Contains(t, header, "Path=/")
	assert.Contains(t, header, "Max-Age=0")
	assert.Contains(t, header, "Expires=Thu, 01 Jan 1970 00:00:00 GMT")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "Secure")
	assert.Contains(t, header, "SameSite=Lax")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	m := cookie.NewFromConfig(cookie.Config{Path: "/", Domain: "dash.example.com", SameSite: http.SameSiteStrictMode}, cookie.WithSecure(true))
	d := m.Defaults()
	assert.Equal(t, "/", d.Path)
	assert.Equal(t, "dash.example.com", d.Domain)
	assert.Equal(t, http.SameSiteStrictMode, d.SameSite)
	assert.True(t, d.Secure)
	assert.True(t, d.HttpOnly)
}
