package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hangman_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hangman_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hangman_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hangman_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// GamesStarted counts started games by the role of the player
	GamesStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hangman_games_started_total",
			Help: "Total number of game sessions started",
		},
		[]string{"role"},
	)

	// GamesCompleted counts terminal games by outcome (won, lost, forfeited)
	GamesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hangman_games_completed_total",
			Help: "Total number of game sessions that reached a terminal state",
		},
		[]string{"outcome"},
	)

	// ActiveSessions tracks the number of live in-memory game sessions
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hangman_active_sessions",
			Help: "Number of live in-memory game sessions",
		},
	)

	// SessionsReaped counts sessions evicted by the idle reaper
	SessionsReaped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hangman_sessions_reaped_total",
			Help: "Total number of idle game sessions evicted by the reaper",
		},
	)

	// UserCacheHits counts the number of user-session cache hits
	UserCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hangman_user_cache_hits_total",
			Help: "Total number of user session cache hits",
		},
	)

	// UserCacheMisses counts the number of user-session cache misses
	UserCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hangman_user_cache_misses_total",
			Help: "Total number of user session cache misses",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hangman_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hangman_goroutine_count",
			Help: "Number of goroutines",
		},
	)
)
