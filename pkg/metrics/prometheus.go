package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	analyses    *prometheus.HistogramVec
	signals     *prometheus.CounterVec
	strength    *prometheus.GaugeVec
	errorsTotal *prometheus.CounterVec
	cacheTotal  *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		analyses: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trendpull_analysis_duration_seconds",
				Help:    "Duration of channel analyses by request source",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		signals: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendpull_signals_total",
				Help: "Total signals emitted by side",
			},
			[]string{"signal"},
		),
		strength: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "trendpull_signal_strength",
				Help: "Strength of the most recent signal by side",
			},
			[]string{"signal"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendpull_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		cacheTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendpull_cache_requests_total",
				Help: "Result cache lookups by outcome",
			},
			[]string{"result"},
		),
	}
}

// RecordAnalysis records one completed analysis and its duration.
func (r *Recorder) RecordAnalysis(source string, seconds float64) {
	r.analyses.WithLabelValues(source).Observe(seconds)
}

// RecordSignal records an emitted signal and its strength.
func (r *Recorder) RecordSignal(signal string, strength float64) {
	r.signals.WithLabelValues(signal).Inc()
	r.strength.WithLabelValues(signal).Set(strength)
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordCacheLookup records a result cache hit or miss.
func (r *Recorder) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheTotal.WithLabelValues(result).Inc()
}
