package metrics

import (
	"cmp"
	"net/http"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "numlist"

// Collector counts adapter operations and the digit count of their results.
// It satisfies numeric.Recorder.
type Collector struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	digits     *prometheus.HistogramVec
	handler    http.Handler
}

// NewCollector returns a collector on its own registry, so several
// collectors can coexist in one process.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Numeric operations performed, by operation.",
		}, []string{"op"}),
		digits: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_digits",
			Help:      "Digits produced per numeric operation.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"op"}),
	}
	reg.MustRegister(c.operations, c.digits, collectors.NewGoCollector())
	c.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return c
}

// Observe records one operation.
func (c *Collector) Observe(op string, digits int) {
	c.operations.WithLabelValues(op).Inc()
	c.digits.WithLabelValues(op).Observe(float64(digits))
}

// Register adds further collectors to the registry served by
// WritePrometheus.
func (c *Collector) Register(cs ...prometheus.Collector) error {
	for _, col := range cs {
		if err := c.registry.Register(col); err != nil {
			return err
		}
	}
	return nil
}

// WritePrometheus serves the registry in the Prometheus text format.
func (c *Collector) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	c.handler.ServeHTTP(w, r)
}

// OpStat summarizes one operation.
type OpStat struct {
	Op          string
	Count       uint64
	TotalDigits float64
}

// Stats returns a summary per operation, sorted by name.
func (c *Collector) Stats() ([]OpStat, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, err
	}
	byOp := map[string]*OpStat{}
	for _, mf := range families {
		if mf.GetName() != namespace+"_operation_digits" {
			continue
		}
		for _, m := range mf.GetMetric() {
			op := labelValue(m.GetLabel(), "op")
			h := m.GetHistogram()
			byOp[op] = &OpStat{Op: op, Count: h.GetSampleCount(), TotalDigits: h.GetSampleSum()}
		}
	}
	out := make([]OpStat, 0, len(byOp))
	for _, s := range byOp {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b OpStat) int { return cmp.Compare(a.Op, b.Op) })
	return out, nil
}

func labelValue(pairs []*dto.LabelPair, name string) string {
	for _, p := range pairs {
		if p.GetName() == name {
			return p.GetValue()
		}
	}
	return ""
}
