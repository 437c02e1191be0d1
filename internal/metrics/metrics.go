package metrics

import "github.com/prometheus/client_golang/prometheus"

// Location-resolution Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astro_atlas",
			Name:      "location_searches_total",
			Help:      "Total number of location searches",
		},
		[]string{"outcome"},
	)

	CandidatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astro_atlas",
			Name:      "location_candidates_total",
			Help:      "Total candidates produced before deduplication",
		},
		[]string{"source"},
	)

	GeocoderErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astro_atlas",
			Name:      "geocoder_errors_total",
			Help:      "Total external geocoder failures recovered as empty results",
		},
		[]string{"operation"},
	)

	CacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "astro_atlas",
			Name:      "result_cache_hits_total",
			Help:      "Total search-result cache hits",
		},
	)

	CacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "astro_atlas",
			Name:      "result_cache_misses_total",
			Help:      "Total search-result cache misses",
		},
	)
)

func init() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(CandidatesTotal)
	prometheus.MustRegister(GeocoderErrorsTotal)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
}
