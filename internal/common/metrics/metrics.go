// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScansProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_scans_processed_total",
			Help: "Total number of body scans processed by the engine",
		},
		[]string{"status"},
	)

	RecommendationsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_recommendations_generated_total",
			Help: "Total number of recommendation records generated",
		},
	)

	ProductsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_products_scored_total",
			Help: "Total number of products scored, by gender segment",
		},
		[]string{"gender"},
	)

	VariantMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_variant_matches_total",
			Help: "Total number of variant matches found, by tier",
		},
		[]string{"tier"},
	)

	EngineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "engine_operation_duration_seconds",
			Help: "Duration of engine operations in seconds",
		},
		[]string{"operation"},
	)

	CatalogCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Catalog cache lookups, by result",
		},
		[]string{"result"},
	)
)
