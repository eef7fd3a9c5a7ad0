package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the API. Each instance owns
// its registry so several can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec   // labels: route, method, status
	RequestDuration *prometheus.HistogramVec // labels: route
	Comparisons     prometheus.Counter
	LookupMisses    *prometheus.CounterVec // labels: op
	Cities          prometheus.Gauge
}

// NewMetrics creates and registers all API metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "costmap",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests served.",
		}, []string{"route", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "costmap",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"route"}),
		Comparisons: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "costmap",
			Name:      "city_comparisons_total",
			Help:      "Total city-to-city comparisons computed.",
		}),
		LookupMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "costmap",
			Name:      "lookup_fallbacks_total",
			Help:      "Unknown city ids answered with a neutral fallback value.",
		}, []string{"op"}),
		Cities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "costmap",
			Name:      "cities_loaded",
			Help:      "Number of cities in the loaded dataset.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests,
		m.RequestDuration,
		m.Comparisons,
		m.LookupMisses,
		m.Cities,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request counts and latencies per route
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
