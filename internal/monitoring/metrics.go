package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Discovery metrics
	DiscoveryRequestsTotal *prometheus.CounterVec
	DiscoveryDuration      *prometheus.HistogramVec
	DiscoveryResultCount   *prometheus.HistogramVec
	MatchScores            prometheus.Histogram

	// Catalog metrics
	CatalogFetchDuration *prometheus.HistogramVec
	CatalogProfiles      *prometheus.GaugeVec
	CacheHits            *prometheus.CounterVec
	CacheMisses          *prometheus.CounterVec

	// Estimator and suggestion metrics
	EstimatesTotal   *prometheus.CounterVec
	SuggestionsTotal prometheus.Counter

	// Database metrics
	DBConnectionsActive prometheus.Gauge
	DBConnectionsIdle   prometheus.Gauge
	DBQueryDuration     *prometheus.HistogramVec
}

var metrics *Metrics

// Init initializes all Prometheus metrics
func Init() *Metrics {
	if metrics != nil {
		return metrics
	}

	metrics = &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		// Discovery metrics
		DiscoveryRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "discovery_requests_total",
				Help: "Total number of discovery requests",
			},
			[]string{"kind", "status"},
		),
		DiscoveryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "discovery_duration_seconds",
				Help:    "Discovery request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"kind"},
		),
		DiscoveryResultCount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "discovery_result_count",
				Help:    "Post-filter result set size per discovery request",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
			[]string{"kind"},
		),
		MatchScores: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "match_score",
				Help:    "Distribution of computed match scores",
				Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			},
		),

		// Catalog metrics
		CatalogFetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_fetch_duration_seconds",
				Help:    "Profile catalog fetch duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"kind", "source"},
		),
		CatalogProfiles: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "catalog_profiles",
				Help: "Number of profiles returned by the last catalog fetch",
			},
			[]string{"kind"},
		),
		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),

		// Estimator and suggestion metrics
		EstimatesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reach_estimates_total",
				Help: "Total number of campaign reach estimates computed",
			},
			[]string{"status"},
		),
		SuggestionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "content_suggestions_total",
				Help: "Total number of content suggestion requests served",
			},
		),

		// Database metrics
		DBConnectionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "db_connections_active",
				Help: "Number of active database connections",
			},
		),
		DBConnectionsIdle: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "db_connections_idle",
				Help: "Number of idle database connections",
			},
		),
		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_type"},
		),
	}

	return metrics
}

// Get returns the global metrics instance
func Get() *Metrics {
	if metrics == nil {
		return Init()
	}
	return metrics
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// MetricsMiddleware is a Gin middleware for collecting HTTP metrics
func MetricsMiddleware() gin.HandlerFunc {
	m := Get()
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		// Track in-flight requests
		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		// Process request
		c.Next()

		// Record metrics
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
	}
}

// RecordDiscovery records the outcome of a discovery request
func RecordDiscovery(kind, status string, duration time.Duration, totalCount int) {
	m := Get()
	m.DiscoveryRequestsTotal.WithLabelValues(kind, status).Inc()
	m.DiscoveryDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if status == "success" {
		m.DiscoveryResultCount.WithLabelValues(kind).Observe(float64(totalCount))
	}
}

// RecordMatchScore records a computed match score
func RecordMatchScore(score int) {
	Get().MatchScores.Observe(float64(score))
}

// RecordCatalogFetch records a catalog fetch
func RecordCatalogFetch(kind, source string, duration time.Duration, profiles int) {
	m := Get()
	m.CatalogFetchDuration.WithLabelValues(kind, source).Observe(duration.Seconds())
	m.CatalogProfiles.WithLabelValues(kind).Set(float64(profiles))
}

// RecordCacheHit records a cache hit
func RecordCacheHit(cacheType string) {
	Get().CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss records a cache miss
func RecordCacheMiss(cacheType string) {
	Get().CacheMisses.WithLabelValues(cacheType).Inc()
}

// RecordEstimate records a reach estimate computation
func RecordEstimate(status string) {
	Get().EstimatesTotal.WithLabelValues(status).Inc()
}

// RecordSuggestions records a content suggestion request
func RecordSuggestions() {
	Get().SuggestionsTotal.Inc()
}

// RecordDBQuery records a database query duration
func RecordDBQuery(queryType string, duration time.Duration) {
	Get().DBQueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}

// SetDBConnections sets database connection metrics
func SetDBConnections(active, idle int) {
	Get().DBConnectionsActive.Set(float64(active))
	Get().DBConnectionsIdle.Set(float64(idle))
}
