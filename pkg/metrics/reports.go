package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of each report query, labeled by report name
	ReportDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_query_latency_seconds",
		Help:    "Latency of analytical report queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})

	// Total number of report requests served
	ReportRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_requests_total",
		Help: "Total number of report requests",
	}, []string{"report"})

	// How many report reads were answered from the Redis cache
	ReportCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_cache_hits_total",
		Help: "Report reads served from cache",
	})
)

func Init() {
	prometheus.MustRegister(ReportDuration, ReportRequests, ReportCacheHits)
}
