package gate_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dashboard/pkg/gate"
	"github.com/dmitrymomot/dashboard/pkg/jwt"
)

var t0 = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func newCodec(t *testing.T, secret string, now time.Time) *jwt.Codec {
	t.Helper()
	codec, err := jwt.New([]byte(secret), jwt.DefaultTTL, jwt.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	return codec
}

func mint(t *testing.T, codec *jwt.Codec) string {
	t.Helper()
	token, err := codec.Mint(jwt.Identity{Subject: "u1", Name: "Ann", Email: "ann@example.com"})
	require.NoError(t, err)
	return token
}

type recorder struct {
	mu     sync.Mutex
	states []gate.State
}

func (r *recorder) ObserveGate(s gate.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder) all() []gate.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]gate.State(nil), r.states...)
}

// protected records whether the handler behind the gate ran and what it saw.
type protected struct {
	called bool
	req    *http.Request
}

func (p *protected) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.called = true
	p.req = r
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("secret page"))
}

func serve(g *gate.Gate, r *http.Request) (*httptest.ResponseRecorder, *protected) {
	next := &protected{}
	rec := httptest.NewRecorder()
	g.Middleware(next).ServeHTTP(rec, r)
	return rec, next
}

func request(path, cookieHeader string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	if cookieHeader != "" {
		r.Header.Set("Cookie", cookieHeader)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	g, err := gate.New(nil)
	require.ErrorIs(t, err, gate.ErrNilVerifier)
	assert.Nil(t, g)
}

func TestProtects(t *testing.T) {
	t.Parallel()

	g, err := gate.New(newCodec(t, "secret", t0))
	require.NoError(t, err)

	tests := []struct {
		path string
		want bool
	}{
		{"/dashboard", true},
		{"/dashboard/", true},
		{"/dashboard/invoices", true},
		{"/dashboard/invoices/42/edit", true},
		{"/dashboards", false},
		{"/dashboard-old", false},
		{"/", false},
		{"/login", false},
		{"/api/login", false},
		{"/Dashboard", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, g.Protects(tt.path))
		})
	}
}

func TestProtectsCustomPrefix(t *testing.T) {
	t.Parallel()

	cfg := gate.DefaultConfig()
	cfg.ProtectedPrefix = "/admin/"
	g, err := gate.New(newCodec(t, "secret", t0), gate.WithConfig(cfg))
	require.NoError(t, err)

	assert.True(t, g.Protects("/admin"))
	assert.True(t, g.Protects("/admin/users"))
	assert.False(t, g.Protects("/administrator"))
}

func TestMiddlewareStates(t *testing.T) {
	t.Parallel()

	codec := newCodec(t, "secret", t0)
	valid := mint(t, codec)
	foreign := mint(t, newCodec(t, "other-secret", t0))
	expired := mint(t, newCodec(t, "secret", t0.Add(-8*24*time.Hour)))

	tests := []struct {
		name       string
		cookie     string
		wantState  gate.State
		wantCalled bool
	}{
		{"no cookie", "", gate.NoToken, false},
		{"other cookies only", "theme=dark", gate.NoToken, false},
		{"empty cookie", "auth_token=", gate.NoToken, false},
		{"garbage", "auth_token=garbage", gate.TokenInvalid, false},
		{"wrong secret", "auth_token=" + foreign, gate.TokenInvalid, false},
		{"expired", "auth_token=" + expired, gate.TokenInvalid, false},
		{"valid", "theme=dark; auth_token=" + valid, gate.TokenValid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			obs := &recorder{}
			g, err := gate.New(codec, gate.WithObserver(obs))
			require.NoError(t, err)

			rec, next := serve(g, request("/dashboard/invoices", tt.cookie))

			assert.Equal(t, tt.wantCalled, next.called)
			assert.Equal(t, []gate.State{tt.wantState}, obs.all())
			if tt.wantCalled {
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login?callbackUrl=%2Fdashboard%2Finvoices", rec.Header().Get("Location"))
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestMiddlewareRejectionsAreIndistinguishable(t *testing.T) {
	t.Parallel()

	codec := newCodec(t, "secret", t0)
	g, err := gate.New(codec)
	require.NoError(t, err)

	noToken, _ := serve(g, request("/dashboard", ""))
	invalid, _ := serve(g, request("/dashboard", "auth_token=garbage"))

	assert.Equal(t, noToken.Code, invalid.Code)
	assert.Equal(t, noToken.Header(), invalid.Header())
	assert.Equal(t, noToken.Body.Bytes(), invalid.Body.Bytes())
}

func TestMiddlewareBypassesUnprotectedPaths(t *testing.T) {
	t.Parallel()

	obs := &recorder{}
	g, err := gate.New(newCodec(t, "secret", t0), gate.WithObserver(obs))
	require.NoError(t, err)

	for _, path := range []string{"/", "/login", "/api/login", "/dashboards"} {
		rec, next := serve(g, request(path, ""))
		assert.True(t, next.called, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
	assert.Empty(t, obs.all())
}

func TestMiddlewareDoesNotInjectClaims(t *testing.T) {
	t.Parallel()

	codec := newCodec(t, "secret", t0)
	g, err := gate.New(codec)
	require.NoError(t, err)

	r := request("/dashboard", "auth_token="+mint(t, codec))
	_, next := serve(g, r)

	require.True(t, next.called)
	assert.Equal(t, r.Context(), next.req.Context())
	assert.Equal(t, r.Header, next.req.Header)
}

func TestMiddlewareEncodesCallback(t *testing.T) {
	t.Parallel()

	g, err := gate.New(newCodec(t, "secret", t0))
	require.NoError(t, err)

	rec, _ := serve(g, request("/dashboard/customers?query=a%20b", ""))
	assert.Equal(t, "/login?callbackUrl=%2Fdashboard%2Fcustomers", rec.Header().Get("Location"))
}

func TestLoginURL(t *testing.T) {
	t.Parallel()

	cfg := gate.DefaultConfig()
	cfg.LoginPath = "/signin"
	cfg.CallbackParam = "next"
	g, err := gate.New(newCodec(t, "secret", t0), gate.WithConfig(cfg))
	require.NoError(t, err)

	assert.Equal(t, "/signin?next=%2Fdashboard", g.LoginURL("/dashboard"))
}

func TestEvaluateUsesRawHeaderOnly(t *testing.T) {
	t.Parallel()

	codec := newCodec(t, "secret", t0)
	g, err := gate.New(codec)
	require.NoError(t, err)

	assert.Equal(t, gate.TokenValid, g.Evaluate(request("/dashboard", "auth_token="+mint(t, codec))))
	assert.Equal(t, gate.NoToken, g.Evaluate(request("/dashboard", "")))
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "no_token", gate.NoToken.String())
	assert.Equal(t, "token_invalid", gate.TokenInvalid.String())
	assert.Equal(t, "token_valid", gate.TokenValid.String())
	assert.Equal(t, "unknown", gate.State(42).String())
}
