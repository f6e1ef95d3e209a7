// Package metrics exposes Prometheus collectors for the advisor.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "advisor"

// Metrics holds every collector. Use New with a dedicated registry in tests.
type Metrics struct {
	registry *prometheus.Registry

	predictions          *prometheus.CounterVec
	riskProbability      prometheus.Histogram
	recommendationsSize  prometheus.Histogram
	emptyRecommendations prometheus.Counter
	eventLogFailures     prometheus.Counter
	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Performance predictions computed, by at-risk flag.",
		}, []string{"at_risk"}),
		riskProbability: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "risk_probability",
			Help:      "Ensemble at-risk probability of computed predictions.",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		}),
		recommendationsSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendations_returned",
			Help:      "Number of courses returned per recommendation request.",
			Buckets:   prometheus.LinearBuckets(0, 1, 11),
		}),
		emptyRecommendations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_no_eligible_total",
			Help:      "Recommendation requests where the student had taken every course.",
		}),
		eventLogFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_log_failures_total",
			Help:      "Score results that could not be written to the event log.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	reg.MustRegister(
		m.predictions, m.riskProbability, m.recommendationsSize, m.emptyRecommendations,
		m.eventLogFailures, m.httpRequests, m.httpDuration,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// Nil receivers are allowed so callers can run without metrics.

func (m *Metrics) ObservePrediction(atRisk bool, probability float64) {
	if m == nil {
		return
	}
	m.predictions.WithLabelValues(strconv.FormatBool(atRisk)).Inc()
	m.riskProbability.Observe(probability)
}

func (m *Metrics) ObserveRecommendations(n int) {
	if m == nil {
		return
	}
	m.recommendationsSize.Observe(float64(n))
	if n == 0 {
		m.emptyRecommendations.Inc()
	}
}

func (m *Metrics) EventLogFailed() {
	if m == nil {
		return
	}
	m.eventLogFailures.Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request counts and latency keyed by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
