package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	requests        *prometheus.CounterVec
	pairings        prometheus.Counter
	pairingFailures *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "swiss_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		pairings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "swiss_pairings_generated_total",
			Help: "Successful pairing computations.",
		}),
		pairingFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "swiss_pairing_failures_total",
			Help: "Failed pairing computations by reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.requests, m.pairings, m.pairingFailures)
	return m
}

func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
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
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	})
}

func (m *Metrics) pairingFailed(reason string) {
	m.pairingFailures.WithLabelValues(reason).Inc()
}
