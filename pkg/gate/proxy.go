package gate

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/dmitrymomot/dashboard/pkg/logger"
)

// NewProxy returns a handler that runs the gate in front of a reverse proxy
// to upstream. Requests the gate lets through are forwarded with
// X-Forwarded-* headers set; upstream failures answer 502.
func NewProxy(g *Gate, upstream *url.URL, log *slog.Logger) (http.Handler, error) {
	if upstream == nil || upstream.Host == "" {
		return nil, ErrNoUpstream
	}
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("edge"))

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(upstream)
			pr.SetXForwarded()
			pr.Out.Host = pr.In.Host
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "upstream request failed",
				logger.Path(r.URL.Path),
				logger.Error(err),
			)
			w.WriteHeader(http.StatusBadGateway)
		},
	}

	return g.Middleware(proxy), nil
}
