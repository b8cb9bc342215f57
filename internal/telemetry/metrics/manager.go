package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests              *prometheus.CounterVec
	CounterHandleRequestPanic    prometheus.Counter
	CounterRateLimitedRequests   prometheus.Counter
	CounterUsersRegistered       prometheus.Counter
	CounterTemplatesCreated      prometheus.Counter
	CounterWorkoutsCreated       prometheus.Counter
	CounterSetsAdded             prometheus.Counter
	CounterEmptyWorkoutsDeleted  prometheus.Counter
	CounterExpiredSessionsPurged prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistogramCleanupDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitness", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitness", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request",
			Help:      "The total number of incoming requests",
		}, []string{"method", "status"}),
		CounterHandleRequestPanic:    counter("handle_request_panic", "The total number of serve request panics"),
		CounterRateLimitedRequests:   counter("rate_limited_requests", "The total number of rate limited requests"),
		CounterUsersRegistered:       counter("users_registered", "The total number of registered users"),
		CounterTemplatesCreated:      counter("templates_created", "The total number of created workout templates"),
		CounterWorkoutsCreated:       counter("workouts_created", "The total number of started workouts"),
		CounterSetsAdded:             counter("sets_added", "The total number of recorded workout sets"),
		CounterEmptyWorkoutsDeleted:  counter("empty_workouts_deleted", "The total number of empty workouts removed by cleanup"),
		CounterExpiredSessionsPurged: counter("expired_sessions_purged", "The total number of expired sessions removed"),

		GaugeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "current_requests",
			Help:      "Current number of requests served",
		}),
		GaugeLifeSignal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "life_signal",
			Help:      "Shows whether the service is alive",
		}),

		HistogramRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Histogram of response time for requests in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"route", "method", "status_code"}),
		HistogramCleanupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "empty_workouts_cleanup_duration_seconds",
			Help:      "Duration of a single empty workouts cleanup run in seconds",
			Buckets:   []float64{0.001, 0.01, 0.1, 1, 10, 60},
		}),
	}
}
