package cmd

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/dashboard/modules/account"
	"github.com/dmitrymomot/dashboard/modules/dashboard"
	"github.com/dmitrymomot/dashboard/pkg/auth"
	"github.com/dmitrymomot/dashboard/pkg/clientip"
	"github.com/dmitrymomot/dashboard/pkg/cookie"
	"github.com/dmitrymomot/dashboard/pkg/environment"
	"github.com/dmitrymomot/dashboard/pkg/gate"
	"github.com/dmitrymomot/dashboard/pkg/httpserver"
	"github.com/dmitrymomot/dashboard/pkg/jwt"
	"github.com/dmitrymomot/dashboard/pkg/logger"
	"github.com/dmitrymomot/dashboard/pkg/metrics"
	"github.com/dmitrymomot/dashboard/pkg/requestid"
	"github.com/dmitrymomot/dashboard/pkg/session"
)

var ErrNilStore = errors.New("nil credential store")

// deps are the collaborators the routers are assembled from.
type deps struct {
	cfg      appConfig
	log      *slog.Logger
	store    auth.CredentialStore
	registry *prometheus.Registry
	checks   []httpserver.CheckFunc
}

func newLogger(cfg appConfig) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.environment(), cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
}

// core holds the pieces shared by the application and the standalone edge.
type core struct {
	codec    *jwt.Codec
	gate     *gate.Gate
	metrics  *metrics.Metrics
	resolver *clientip.Resolver
}

func newCore(d deps) (*core, error) {
	codec, err := jwt.NewFromConfig(d.cfg.JWT)
	if err != nil {
		return nil, err
	}

	m := metrics.New(d.registry)

	g, err := gate.New(codec,
		gate.WithConfig(d.cfg.Gate),
		gate.WithObserver(m),
		gate.WithLogger(d.log),
	)
	if err != nil {
		return nil, err
	}

	return &core{
		codec:    codec,
		gate:     g,
		metrics:  m,
		resolver: clientip.NewFromConfig(d.cfg.ClientIP),
	}, nil
}

// baseRouter installs the middleware common to both routers, then extra,
// then the health and metrics routes.
func (c *core) baseRouter(d deps, extra ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(d.cfg.environment()),
		c.resolver.Middleware,
		middleware.Recoverer,
		c.metrics.Middleware,
	)
	r.Use(extra...)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(d.log, d.checks...))
	r.Handle("/metrics", metrics.Handler(d.registry))

	return r
}

// newAppRouter builds the full application: gate, login API and dashboard.
func newAppRouter(d deps) (http.Handler, error) {
	if d.store == nil {
		return nil, ErrNilStore
	}

	c, err := newCore(d)
	if err != nil {
		return nil, err
	}

	env := d.cfg.environment()
	cookies := cookie.NewFromConfig(d.cfg.Cookie, cookie.WithSecure(env.IsProduction()))
	transport := session.NewCookieTransport(cookies, d.cfg.Session.CookieName, nil)

	sessions, err := session.NewManager(c.codec,
		session.WithTransport(transport),
		session.WithLogger(d.log),
	)
	if err != nil {
		return nil, err
	}
	reader, err := session.NewReader(c.codec,
		session.WithTransport(transport),
		session.WithLogger(d.log),
	)
	if err != nil {
		return nil, err
	}

	authn, err := auth.NewAuthenticator(d.store, auth.WithLogger(d.log))
	if err != nil {
		return nil, err
	}

	acct, err := account.NewService(authn, sessions,
		account.WithObserver(c.metrics),
		account.WithLogger(d.log),
		account.WithLoginPath(d.cfg.Gate.LoginPath),
		account.WithClientIP(func(r *http.Request) string { return clientip.FromContext(r.Context()) }),
	)
	if err != nil {
		return nil, err
	}

	dash, err := dashboard.NewService(reader, c.codec,
		dashboard.WithLoginURL(c.gate.LoginURL),
		dashboard.WithCookieName(d.cfg.Session.CookieName),
		dashboard.WithLogger(d.log),
	)
	if err != nil {
		return nil, err
	}

	r := c.baseRouter(d, c.gate.Middleware, cookie.Middleware)
	acct.Routes(r)
	dash.Routes(r)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, account.DefaultRedirect, http.StatusFound)
	})

	return r, nil
}

// newEdgeRouter builds the standalone gate in front of upstream.
func newEdgeRouter(d deps, upstream *url.URL) (http.Handler, error) {
	c, err := newCore(d)
	if err != nil {
		return nil, err
	}

	proxy, err := gate.NewProxy(c.gate, upstream, d.log)
	if err != nil {
		return nil, err
	}

	r := c.baseRouter(d)
	r.Handle("/*", proxy)

	return r, nil
}
