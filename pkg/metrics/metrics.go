// Package metrics exposes Prometheus counters for authentication decisions.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/dashboard/pkg/gate"
)

const namespace = "dashboard"

// Metrics holds all Prometheus metrics for the dashboard.
// Pass to components that need to record metrics.
type Metrics struct {
	GateDecisions   *prometheus.CounterVec
	LoginAttempts   *prometheus.CounterVec
	Logouts         prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics with the given registry.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		GateDecisions: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gate_decisions_total",
				Help:      "Edge gate decisions on protected paths",
			},
			[]string{"state"}, // no_token/token_invalid/token_valid
		),
		LoginAttempts: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_attempts_total",
				Help:      "Login attempts by result",
			},
			[]string{"result"},
		),
		Logouts: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logouts_total",
				Help:      "Logout requests served",
			},
		),
		RequestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// ObserveGate implements gate.Observer.
func (m *Metrics) ObserveGate(state gate.State) {
	m.GateDecisions.WithLabelValues(state.String()).Inc()
}

func (m *Metrics) ObserveLogin(result string) {
	m.LoginAttempts.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveLogout() {
	m.Logouts.Inc()
}

// Middleware records request durations labelled by chi route pattern.
// Requests that match no route are labelled "unmatched".
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.RequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}

// Handler serves the metrics in reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
