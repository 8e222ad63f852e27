package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Retrieval outcomes
	BookingRetrievals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_retrievals_total",
			Help: "Total number of booking retrievals by source",
		},
		[]string{"source", "forced"},
	)

	BookingExpiredResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_expired_results_total",
			Help: "Total number of retrievals that returned an expired booking",
		},
		[]string{"source"},
	)

	StaleCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_stale_cache_hits_total",
			Help: "Total number of cached bookings discarded because they had expired",
		},
	)

	// Cache failures that were recovered or propagated
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_cache_errors_total",
			Help: "Total number of booking cache errors",
		},
		[]string{"operation", "kind"},
	)

	FetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_fetch_errors_total",
			Help: "Total number of failed remote booking fetches",
		},
	)

	// Remote fetch latency
	FetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "booking_fetch_duration_seconds",
			Help:    "Duration of remote booking fetches",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Store operation latency
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "booking_store_operation_duration_seconds",
			Help:    "Duration of key-value store operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "backend"},
	)

	// In-memory store stats
	StoreCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "booking_store_capacity_bytes",
			Help: "In-memory store capacity in bytes",
		},
		[]string{"backend"},
	)

	StoreEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "booking_store_entries",
			Help: "Number of entries held by the store",
		},
		[]string{"backend"},
	)
)

// RecordRetrieval records a completed retrieval
func RecordRetrieval(source string, forced, expired bool) {
	forcedLabel := "false"
	if forced {
		forcedLabel = "true"
	}
	BookingRetrievals.WithLabelValues(source, forcedLabel).Inc()

	if expired {
		BookingExpiredResults.WithLabelValues(source).Inc()
	}
}

// RecordStaleCacheHit records a cached booking discarded as expired
func RecordStaleCacheHit() {
	StaleCacheHits.Inc()
}

// RecordCacheError records a cache error with operation and kind
func RecordCacheError(operation, kind string) {
	CacheErrors.WithLabelValues(operation, kind).Inc()
}

// RecordFetchError records a failed remote fetch
func RecordFetchError() {
	FetchErrors.Inc()
}

// TimeFetch returns a timer function for measuring remote fetch duration
func TimeFetch() func() {
	timer := prometheus.NewTimer(FetchDuration)
	return func() {
		timer.ObserveDuration()
	}
}

// TimeStoreOperation returns a timer function for measuring store operation duration
func TimeStoreOperation(operation, backend string) func() {
	timer := prometheus.NewTimer(StoreOperationDuration.WithLabelValues(operation, backend))
	return func() {
		timer.ObserveDuration()
	}
}

// UpdateStoreStats updates in-memory store capacity and entry gauges
func UpdateStoreStats(backend string, capacity, entries int64) {
	StoreCapacity.WithLabelValues(backend).Set(float64(capacity))
	StoreEntries.WithLabelValues(backend).Set(float64(entries))
}
