// Package observability provides logging, metrics, and tracing helpers.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waveline_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "waveline_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// FeedAssemblyLatency records end-to-end feed query latency.
	FeedAssemblyLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "waveline_feed_assembly_latency_seconds",
		Help:    "Latency of assembling a paginated feed page",
		Buckets: prometheus.DefBuckets,
	})

	// NotificationsEnqueued counts notifications enqueued by type.
	NotificationsEnqueued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waveline_notifications_enqueued_total",
		Help: "Total notifications enqueued by type",
	}, []string{"type"})

	// FriendRequestsTotal counts friend-request transitions by outcome.
	FriendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waveline_friend_requests_total",
		Help: "Friend request operations by outcome (sent, accepted, rejected)",
	}, []string{"outcome"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
