package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "leilaoradar_cache_hits_total",
		Help: "Listing requests served from the region cache",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "leilaoradar_cache_misses_total",
		Help: "Listing requests that had to refresh the region cache",
	})
	UpstreamFetchTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "leilaoradar_upstream_fetch_total",
		Help: "Total listing downloads attempted against the upstream feed",
	})
	UpstreamFetchFailTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "leilaoradar_upstream_fetch_fail_total",
		Help: "Total listing downloads that failed",
	})
	UpstreamFetchDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "leilaoradar_upstream_fetch_duration_ms",
		Help:    "Listing download duration in milliseconds",
		Buckets: []float64{50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000},
	})
	AdvisoryRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "leilaoradar_advisory_requests_total",
		Help: "Total property analyses requested from the completion API",
	})
	AdvisoryFailTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "leilaoradar_advisory_fail_total",
		Help: "Total property analyses that failed",
	})
	AdvisoryDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "leilaoradar_advisory_duration_ms",
		Help:    "Completion API call duration in milliseconds",
		Buckets: []float64{100, 250, 500, 1000, 2000, 5000, 10000, 20000},
	})
)

func init() {
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(UpstreamFetchTotal)
	prometheus.MustRegister(UpstreamFetchFailTotal)
	prometheus.MustRegister(UpstreamFetchDurationMs)
	prometheus.MustRegister(AdvisoryRequestsTotal)
	prometheus.MustRegister(AdvisoryFailTotal)
	prometheus.MustRegister(AdvisoryDurationMs)
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }
