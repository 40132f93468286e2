package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	ResponsesSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "survey_responses_submitted_total",
			Help: "Completed survey submissions appended to the response log",
		},
	)

	SyncTasks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survey_sync_tasks_total",
			Help: "Remote push tasks by action and result (ok, failed, dropped)",
		},
		[]string{"action", "result"},
	)

	RemoteRecordsSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survey_remote_records_skipped_total",
			Help: "Malformed records ignored while merging the remote payload",
		},
		[]string{"kind"},
	)

	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "survey_active_sessions",
			Help: "Survey sessions currently held in the registry",
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			ResponsesSubmitted,
			SyncTasks,
			RemoteRecordsSkipped,
			ActiveSessions,
		)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
