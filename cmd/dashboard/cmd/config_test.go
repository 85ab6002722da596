package cmd

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dashboard/pkg/config"
	"github.com/dmitrymomot/dashboard/pkg/jwt"
)

func TestAppConfigDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_NAME", "AUTH_SECRET", "AUTH_TOKEN_TTL", "AUTH_COOKIE_NAME", "HTTP_ADDR", "CLIENTIP_HEADERS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	var cfg appConfig
	require.NoError(t, config.Parse(&cfg))

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "dashboard", cfg.Name)
	assert.Equal(t, jwt.DefaultSecret, cfg.JWT.Secret)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "auth_token", cfg.Session.CookieName)
	assert.Equal(t, "/dashboard", cfg.Gate.ProtectedPrefix)
	assert.Equal(t, "/login", cfg.Gate.LoginPath)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, []string{"X-Forwarded-For", "X-Real-IP"}, cfg.ClientIP.Headers)
	require.NoError(t, cfg.check())
}

func TestAppConfigCheck(t *testing.T) {
	t.Parallel()

	base := appConfig{Env: "development"}
	base.JWT.Secret = jwt.DefaultSecret
	base.Session.CookieName = "auth_token"
	base.Gate.CookieName = "auth_token"

	tests := []struct {
		name    string
		mutate  func(*appConfig)
		wantErr error
	}{
		{"development accepts default secret", func(*appConfig) {}, nil},
		{"production rejects default secret", func(c *appConfig) { c.Env = "production" }, ErrInsecureSecret},
		{"prod alias rejects default secret", func(c *appConfig) { c.Env = "PROD" }, ErrInsecureSecret},
		{"production with real secret", func(c *appConfig) { c.Env = "production"; c.JWT.Secret = "s3cr3t" }, nil},
		{"unknown environment", func(c *appConfig) { c.Env = "qa" }, ErrUnknownEnvironment},
		{"cookie names differ", func(c *appConfig) { c.Gate.CookieName = "other" }, ErrCookieNameMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := base
			tt.mutate(&cfg)
			err := cfg.check()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolveUpstream(t *testing.T) {
	t.Parallel()

	u, err := resolveUpstream("http://127.0.0.1:3000", "http://ignored:1")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3000", u.Host)

	u, err = resolveUpstream("", "https://app.internal")
	require.NoError(t, err)
	assert.Equal(t, "app.internal", u.Host)

	for _, raw := range []string{"", "ftp://x", "not a url", "http://"} {
		_, err := resolveUpstream(raw, "")
		require.ErrorIs(t, err, config.ErrInvalidConfig, raw)
	}
}

func TestPasswordInput(t *testing.T) {
	t.Parallel()

	got, err := passwordInput([]string{"from-arg"}, strings.NewReader("ignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-arg", got)

	got, err = passwordInput(nil, strings.NewReader("from-stdin\r\nsecond line\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-stdin", got)

	got, err = passwordInput(nil, strings.NewReader("no-newline"))
	require.NoError(t, err)
	assert.Equal(t, "no-newline", got)
}
