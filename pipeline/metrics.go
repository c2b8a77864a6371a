package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "frankengrid"

// Metrics collects generation counters. All metrics are registered on the
// registerer passed to NewMetrics; nothing touches the global registry.
type Metrics struct {
	GraphsBuilt       prometheus.Counter
	StageDuration     *prometheus.HistogramVec
	DegenerateGrowth  *prometheus.CounterVec
	SeedInfeasible    *prometheus.CounterVec
	MaskCellsBridged  prometheus.Counter
	NodesGenerated    prometheus.Counter
	GeoEdgesBuilt     prometheus.Counter
	SocialEdgesBuilt  prometheus.Counter
	NonContiguousRuns prometheus.Counter
}

// NewMetrics registers every metric on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		GraphsBuilt: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "graphs_built_total",
			Help:      "Datasets generated successfully",
		}),
		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time per generation stage",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"stage"}),
		DegenerateGrowth: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "degenerate_growth_events_total",
			Help:      "District growth steps taken with every frontier empty",
		}, []string{"kind"}),
		SeedInfeasible: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "seed_infeasible_total",
			Help:      "Seed selections that exhausted their budget",
		}, []string{"strategy"}),
		MaskCellsBridged: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "mask_cells_bridged_total",
			Help:      "Water cells converted to join mask islands",
		}),
		NodesGenerated: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "nodes_generated_total",
			Help:      "Nodes across all generated datasets",
		}),
		GeoEdgesBuilt: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "geo_edges_built_total",
			Help:      "GEO edges across all generated datasets",
		}),
		SocialEdgesBuilt: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "social_edges_built_total",
			Help:      "SOCIAL edges across all generated datasets",
		}),
		NonContiguousRuns: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "non_contiguous_runs_total",
			Help:      "Datasets with at least one non-contiguous district",
		}),
	}
}
