package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess    = "success"
	OutcomeInvalidZIP = "invalid_zip"
	OutcomeError      = "error"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forecast_upstream_requests_total",
		Help: "Forecast requests sent to the IQVIA APIs",
	}, []string{"category", "kind", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "forecast_upstream_request_duration_seconds",
		Help:    "Latency of forecast requests sent to the IQVIA APIs",
		Buckets: prometheus.DefBuckets,
	}, []string{"category", "kind"})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forecast_cache_lookups_total",
		Help: "Forecast cache lookups by result",
	}, []string{"result"})

	coalescedRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_coalesced_requests_total",
		Help: "Client requests answered by a shared upstream call",
	})

	httpResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forecast_http_responses_total",
		Help: "HTTP API responses by status code",
	}, []string{"code"})
)

func ObserveUpstream(category, kind, outcome string, seconds float64) {
	upstreamRequests.WithLabelValues(category, kind, outcome).Inc()
	upstreamDuration.WithLabelValues(category, kind).Observe(seconds)
}

func CacheLookup(result string) {
	cacheLookups.WithLabelValues(result).Inc()
}

// Coalesced records callers that shared one upstream call, beyond the first.
func Coalesced(n int) {
	if n > 1 {
		coalescedRequests.Add(float64(n - 1))
	}
}

func HTTPResponse(code string) {
	httpResponses.WithLabelValues(code).Inc()
}

// UpstreamRequests returns the counter for a label set; used by tests.
func UpstreamRequests(category, kind, outcome string) prometheus.Counter {
	return upstreamRequests.WithLabelValues(category, kind, outcome)
}

func CacheLookups(result string) prometheus.Counter {
	return cacheLookups.WithLabelValues(result)
}

func CoalescedRequests() prometheus.Counter {
	return coalescedRequests
}
