package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "pwgen"

// Error reasons used as the "reason" label.
const (
	reasonInvalid   = "invalid_request"
	reasonTimeout   = "timeout"
	reasonExhausted = "max_attempts"
)

type metrics struct {
	generated prometheus.Counter
	attempts  prometheus.Histogram
	errors    *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "passwords_generated_total",
			Help:      "Total number of passwords returned to clients",
		}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "generation_attempts",
			Help:      "Number of attempts needed per generated password",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1 to 512
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "generation_errors_total",
			Help:      "Total number of failed generation requests by reason",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.generated, m.attempts, m.errors)
	return m
}

func (m *metrics) recordPassword(attempts int) {
	m.generated.Inc()
	m.attempts.Observe(float64(attempts))
}

func (m *metrics) recordError(reason string) {
	m.errors.WithLabelValues(reason).Inc()
}
