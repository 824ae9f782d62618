package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric when no namespace is configured.
const DefaultNamespace = "markup"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once          sync.Once
	parseDuration prom.Histogram
	outcomes      *prom.CounterVec
	failures      *prom.CounterVec
	nodeCount     prom.Histogram
	inputBytes    prom.Histogram
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry, namespace string) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.parseDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Duration of a single document parse",
			Buckets:   prom.ExponentialBuckets(0.0001, 4, 10),
		})
		pr.outcomes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "parse_outcomes_total",
			Help:      "Parse outcomes by final status",
		}, []string{"outcome"})
		pr.failures = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "parse_failures_total",
			Help:      "Parse failures by error category",
		}, []string{"category"})
		pr.nodeCount = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "ast_nodes",
			Help:      "Number of AST nodes produced per parse",
			Buckets:   prom.ExponentialBuckets(1, 4, 10),
		})
		pr.inputBytes = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "input_bytes",
			Help:      "Size of parsed inputs in bytes",
			Buckets:   prom.ExponentialBuckets(64, 4, 10),
		})
		reg.MustRegister(pr.parseDuration, pr.outcomes, pr.failures, pr.nodeCount, pr.inputBytes)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveParseDuration(d time.Duration) {
	if p == nil || p.parseDuration == nil {
		return
	}
	p.parseDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncParseOutcome(outcome OutcomeLabel) {
	if p == nil || p.outcomes == nil {
		return
	}
	p.outcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncFailureCategory(category string) {
	if p == nil || p.failures == nil {
		return
	}
	p.failures.WithLabelValues(category).Inc()
}

func (p *PrometheusRecorder) ObserveNodeCount(n int) {
	if p == nil || p.nodeCount == nil {
		return
	}
	p.nodeCount.Observe(float64(n))
}

func (p *PrometheusRecorder) ObserveInputBytes(n int) {
	if p == nil || p.inputBytes == nil {
		return
	}
	p.inputBytes.Observe(float64(n))
}
