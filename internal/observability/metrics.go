package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// assessment service.
type Metrics struct {
	AssessmentsTotal   *prometheus.CounterVec // labels: structure, feasibility={Feasible,Not Feasible}
	AssessmentDuration prometheus.Histogram

	// Rainfall resolution metrics.
	RainfallLookups  *prometheus.CounterVec   // labels: source={supplied,coordinates,place,default}
	ProviderRequests *prometheus.CounterVec   // labels: query={coordinates,place}, outcome={success,error,empty}
	ProviderDuration *prometheus.HistogramVec // labels: query={coordinates,place}
	RainfallCache    *prometheus.CounterVec   // labels: query={coordinates,place}, result={hit,miss}
	ProviderEnabled  prometheus.Gauge

	// Event publishing metrics.
	EventsPublished prometheus.Counter
	PublishErrors   prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		AssessmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rtrwh",
			Name:      "assessments_total",
			Help:      "Completed assessments by recommended structure and feasibility.",
		}, []string{"structure", "feasibility"}),
		AssessmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rtrwh",
			Name:      "assessment_duration_seconds",
			Help:      "Duration of a complete assessment including rainfall resolution.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		RainfallLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rtrwh",
			Name:      "rainfall_lookups_total",
			Help:      "Rainfall resolutions by source.",
		}, []string{"source"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rtrwh",
			Name:      "provider_requests_total",
			Help:      "Weather provider requests by query kind and outcome.",
		}, []string{"query", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rtrwh",
			Name:      "provider_request_duration_seconds",
			Help:      "Weather provider request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"query"}),
		RainfallCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rtrwh",
			Name:      "rainfall_cache_total",
			Help:      "Rainfall cache lookups by query kind and result.",
		}, []string{"query", "result"}),
		ProviderEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rtrwh",
			Name:      "provider_enabled",
			Help:      "1 when the weather provider is configured, 0 otherwise.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rtrwh",
			Name:      "events_published_total",
			Help:      "Total assessment events written to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rtrwh",
			Name:      "publish_errors_total",
			Help:      "Total failures writing assessment events to the sink topic.",
		}),
	}

	prometheus.MustRegister(
		m.AssessmentsTotal,
		m.AssessmentDuration,
		m.RainfallLookups,
		m.ProviderRequests,
		m.ProviderDuration,
		m.RainfallCache,
		m.ProviderEnabled,
		m.EventsPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		AssessmentsTotal:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "rtrwh", Name: "assessments_total"}, []string{"structure", "feasibility"}),
		AssessmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "rtrwh", Name: "assessment_duration_seconds"}),
		RainfallLookups:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "rtrwh", Name: "rainfall_lookups_total"}, []string{"source"}),
		ProviderRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "rtrwh", Name: "provider_requests_total"}, []string{"query", "outcome"}),
		ProviderDuration:   prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "rtrwh", Name: "provider_request_duration_seconds"}, []string{"query"}),
		RainfallCache:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "rtrwh", Name: "rainfall_cache_total"}, []string{"query", "result"}),
		ProviderEnabled:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "rtrwh", Name: "provider_enabled"}),
		EventsPublished:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "rtrwh", Name: "events_published_total"}),
		PublishErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "rtrwh", Name: "publish_errors_total"}),
	}
}
