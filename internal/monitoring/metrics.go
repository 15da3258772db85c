// Package monitoring exposes Prometheus metrics for the API server and the
// scoring pipeline.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "varscope_http_requests_total",
			Help: "Total HTTP requests served, by method, route pattern, and status.",
		},
		[]string{"method", "route", "status"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "varscope_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	teamsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "varscope_teams_loaded",
			Help: "Number of team rows in the scored table.",
		},
	)
	biasScoreSpread = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "varscope_bias_score_spread",
			Help: "Difference between the highest and lowest bias score in the table.",
		},
	)
)

// ObserveTable records gauges describing the frozen scored table.
func ObserveTable(teams int, minScore, maxScore float64) {
	teamsLoaded.Set(float64(teams))
	biasScoreSpread.Set(maxScore - minScore)
}

// statusRecorder captures the response status code for metrics labels.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and latency for every handled request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		// Label by route pattern, not raw path, to keep cardinality bounded.
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
