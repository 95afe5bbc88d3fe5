package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewServerMetrics() *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gym",
		Subsystem: "api",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gym",
		Subsystem: "api",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	prometheus.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

// Observe records per-route request counts and latency. The route template
// (not the raw path) is used as the handler label to keep cardinality bounded.
func (m *ServerMetrics) Observe(c *gin.Context) {
	start := time.Now()
	c.Next()

	handler := c.FullPath()
	if handler == "" {
		handler = "unmatched"
	}
	m.Requests.WithLabelValues(handler, strconv.Itoa(c.Writer.Status())).Inc()
	m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
}
