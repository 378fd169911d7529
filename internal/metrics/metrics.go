// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RankRequests counts ranking requests by terminal outcome:
	// ok, input_error, upstream_error, no_results.
	RankRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibes_rank_requests_total",
		Help: "Ranking requests by outcome.",
	}, []string{"outcome"})

	// Translations counts translator resolutions by source tier.
	Translations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibes_translations_total",
		Help: "Vibe translations by source (dictionary, llm, fallback).",
	}, []string{"source"})

	// CacheHits counts TTL cache hits by cache name.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibes_cache_hits_total",
		Help: "TTL cache hits by cache.",
	}, []string{"cache"})

	// CacheMisses counts TTL cache misses by cache name.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibes_cache_misses_total",
		Help: "TTL cache misses by cache.",
	}, []string{"cache"})

	// UpstreamLatency observes round-trip time of places API searches.
	UpstreamLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vibes_places_search_seconds",
		Help:    "Places API search latency.",
		Buckets: prometheus.DefBuckets,
	})
)
