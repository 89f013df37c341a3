package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheLookups counts collection-cache lookups by result (hit|miss).
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oakfield_cache_lookups_total",
			Help: "Total number of property cache lookups",
		},
		[]string{"result"},
	)

	// CacheInvalidations counts explicit cache invalidations.
	CacheInvalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "oakfield_cache_invalidations_total",
			Help: "Total number of explicit cache invalidations",
		},
	)

	// StoreQueries counts reads issued against the property store (fetch|count).
	StoreQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oakfield_store_queries_total",
			Help: "Total number of property store queries",
		},
		[]string{"kind"},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oakfield_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
