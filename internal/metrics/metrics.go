package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collection ingestion counters and histograms.

var (
	// Ingestor
	IngestionRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nft_assistant",
		Subsystem: "ingestor",
		Name:      "runs_total",
		Help:      "Total collection ingestion runs by outcome",
	}, []string{"status"})

	IngestionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nft_assistant",
		Subsystem: "ingestor",
		Name:      "run_duration_seconds",
		Help:      "Collection ingestion duration",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300, 900, 1800, 3600},
	}, []string{"status"})

	MetadataPersisted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nft_assistant",
		Subsystem: "ingestor",
		Name:      "metadata_persisted_total",
		Help:      "Total metadata documents written to the cache store",
	})

	// Fetcher
	FetcherBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nft_assistant",
		Subsystem: "fetcher",
		Name:      "batches_total",
		Help:      "Total asset batches by outcome",
	}, []string{"outcome"})

	FetcherBatchRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nft_assistant",
		Subsystem: "fetcher",
		Name:      "batch_retries_total",
		Help:      "Total asset batch retries",
	})

	FetcherFailedChunks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nft_assistant",
		Subsystem: "fetcher",
		Name:      "failed_chunks_total",
		Help:      "Total asset batches recorded as failed after retry exhaustion",
	})

	FetcherDroppedItems = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nft_assistant",
		Subsystem: "fetcher",
		Name:      "dropped_items_total",
		Help:      "Total assets dropped for lacking required fields",
	})

	// Resolver
	ResolverCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nft_assistant",
		Subsystem: "resolver",
		Name:      "cache_lookups_total",
		Help:      "Total resolver cache lookups by result",
	}, []string{"result"})

	// API
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nft_assistant",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Total API requests by route and status",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nft_assistant",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "API request duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Providers
	ProviderRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nft_assistant",
		Subsystem: "provider",
		Name:      "request_duration_seconds",
		Help:      "Provider request duration including rate limit wait",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"provider", "outcome"})
)

// Label values
const (
	OutcomeSuccess = "success"
	OutcomeRetried = "retried"
	OutcomeFailed  = "failed"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
