package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Materialization metrics
	MaterializationRuns    *prometheus.CounterVec
	OccurrencesCreated     prometheus.Counter
	MaterializationTime    prometheus.Histogram
	BatchTemplatesSelected prometheus.Histogram

	// Template metrics
	TemplatesCreated prometheus.Counter
	TemplatesEnded   prometheus.Counter

	// Occurrence metrics
	OccurrencesDeleted prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		MaterializationRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finflow_materialization_runs_total",
				Help: "Total number of materialization runs by outcome",
			},
			[]string{"status"},
		),
		OccurrencesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finflow_occurrences_created_total",
			Help: "Total number of occurrences created by materialization",
		}),
		MaterializationTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "finflow_materialization_duration_seconds",
			Help:    "Duration of materialization runs",
			Buckets: prometheus.DefBuckets,
		}),
		BatchTemplatesSelected: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "finflow_batch_templates_selected",
			Help:    "Number of templates selected per batch run",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000},
		}),

		TemplatesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finflow_templates_created_total",
			Help: "Total number of recurrence templates created",
		}),
		TemplatesEnded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finflow_templates_ended_total",
			Help: "Total number of recurrence templates ended",
		}),

		OccurrencesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finflow_occurrences_deleted_total",
			Help: "Total number of occurrences deleted by users",
		}),
	}
}
