package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/numlist/internal/metrics"
)

// Metrics tracks HTTP traffic. Its collectors live on the registry of the
// operation Collector, so /metrics serves both.
type Metrics struct {
	collector      *metrics.Collector
	activeRequests prometheus.Gauge
	requestsTotal  *prometheus.CounterVec
}

// NewMetrics registers the HTTP collectors on c.
func NewMetrics(c *metrics.Collector) (*Metrics, error) {
	m := &Metrics{
		collector: c,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "numlist",
			Name:      "active_requests",
			Help:      "HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "numlist",
			Name:      "requests_total",
			Help:      "HTTP requests served, by path and status code.",
		}, []string{"path", "code"}),
	}
	if err := c.Register(m.activeRequests, m.requestsTotal); err != nil {
		return nil, err
	}
	return m, nil
}

// IncrementActiveRequests marks the start of a request.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests marks the end of a request.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// ObserveRequest counts one finished request.
func (m *Metrics) ObserveRequest(path string, code int) {
	m.requestsTotal.WithLabelValues(path, strconv.Itoa(code)).Inc()
}

// WritePrometheus serves every registered metric.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.collector.WritePrometheus(w, r)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}
