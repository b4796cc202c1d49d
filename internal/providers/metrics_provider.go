package providers

import (
	"ctfwatch/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	AddEventsFetched(count int)
	AddNewEvents(count int)
	IncNotifications(kind string)
	ObserveSweepDuration(duration time.Duration)
	SetWatchlistSize(count int)
	SetBaselineSize(count int)
}

type MetricsProvider struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
	eventsFetched      prometheus.Counter
	newEvents          prometheus.Counter
	notificationsTotal *prometheus.CounterVec
	sweepDuration      prometheus.Histogram
	watchlistSize      prometheus.Gauge
	baselineSize       prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) AddEventsFetched(count int) {
	m.eventsFetched.Add(float64(count))
}

func (m *MetricsProvider) AddNewEvents(count int) {
	m.newEvents.Add(float64(count))
}

func (m *MetricsProvider) IncNotifications(kind string) {
	m.notificationsTotal.WithLabelValues(kind).Inc()
}

func (m *MetricsProvider) ObserveSweepDuration(duration time.Duration) {
	m.sweepDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetWatchlistSize(count int) {
	m.watchlistSize.Set(float64(count))
}

func (m *MetricsProvider) SetBaselineSize(count int) {
	m.baselineSize.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ctfwatch_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ctfwatch_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ctfwatch_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ctfwatch_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		eventsFetched: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ctfwatch_events_fetched_total",
			Help: "Total number of events retrieved from the source",
		}),

		newEvents: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ctfwatch_new_events_total",
			Help: "Total number of events detected as new against the baseline",
		}),

		notificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ctfwatch_notifications_total",
			Help: "Total number of notifications emitted by kind",
		}, []string{"kind"}),

		sweepDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ctfwatch_sweep_duration_seconds",
			Help:    "Duration of reminder sweeps in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		watchlistSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ctfwatch_watchlist_size",
			Help: "Current number of watch list entries",
		}),

		baselineSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ctfwatch_baseline_size",
			Help: "Number of events in the last persisted baseline",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) AddEventsFetched(_ int)                           {}
func (n *noopMetrics) AddNewEvents(_ int)                               {}
func (n *noopMetrics) IncNotifications(_ string)                        {}
func (n *noopMetrics) ObserveSweepDuration(_ time.Duration)             {}
func (n *noopMetrics) SetWatchlistSize(_ int)                           {}
func (n *noopMetrics) SetBaselineSize(_ int)                            {}
