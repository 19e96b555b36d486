package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/lehigh-university-libraries/marcwalk/hub"
)

type metrics struct {
	registry  *prometheus.Registry
	converted *prometheus.CounterVec
	skipped   prometheus.Counter
	failures  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		registry: reg,
		converted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marcwalk",
			Name:      "records_converted_total",
			Help:      "Records mapped and written, by record kind.",
		}, []string{"kind"}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "marcwalk",
			Name:      "records_skipped_total",
			Help:      "Records dropped for an unsupported type or by the profile.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marcwalk",
			Name:      "convert_failures_total",
			Help:      "Convert requests that failed, by reason.",
		}, []string{"reason"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "marcwalk",
			Name:      "convert_duration_seconds",
			Help:      "Time spent parsing and serializing a convert request.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"format"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.converted,
		m.skipped,
		m.failures,
		m.duration,
	)
	return m
}

func (m *metrics) observeRecords(records []hub.Record, skipped int) {
	for _, r := range records {
		m.converted.WithLabelValues(string(r.Kind())).Inc()
	}
	m.skipped.Add(float64(skipped))
}
