package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/topi314/event-graph/internal/xio"
	"github.com/topi314/event-graph/server/store"
)

const metricsNamespace = "event_graph"

func newMetrics(s *store.Store) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})
	m.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "http_request_duration_seconds",
		Help:      "Time spent handling HTTP requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
	m.graphqlErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "graphql_errors_total",
		Help:      "Number of GraphQL errors by code",
	}, []string{"code"})

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration, m.graphqlErrors,
		recordsGauge("events", s.Events.Len),
		recordsGauge("users", s.Users.Len),
		recordsGauge("locations", s.Locations.Len),
		recordsGauge("participants", s.Participants.Len),
	)

	return m
}

func recordsGauge(entity string, count func() int) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   metricsNamespace,
		Name:        "store_records",
		Help:        "Number of records held in the store",
		ConstLabels: prometheus.Labels{"entity": entity},
	}, func() float64 {
		return float64(count())
	})
}

type Metrics struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	graphqlErrors *prometheus.CounterVec
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := xio.NewStatusResponseWriter(w)

		next.ServeHTTP(sw, r)

		// the mux sets the pattern on the request it routed
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(sw.Status)).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) GraphQLError(code string) {
	m.graphqlErrors.WithLabelValues(code).Inc()
}
