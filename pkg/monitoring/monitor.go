package monitoring

import (
	"strconv"
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
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// 学习活动指标
	ActivitiesFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "english_quest_activities_finished_total",
			Help: "Finished practice and exam sets",
		},
		[]string{"type"},
	)

	SpeedFlags = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "english_quest_speed_flags_total",
			Help: "Completions flagged as implausibly fast",
		},
		[]string{"type"},
	)

	XPAwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "english_quest_xp_awarded_total",
			Help: "XP granted to learners",
		},
		[]string{"source"},
	)

	LeaguePromotions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "english_quest_league_promotions_total",
			Help: "League promotions by target league",
		},
		[]string{"league"},
	)

	GeneratorFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "english_quest_generator_failures_total",
			Help: "Failed content generation calls",
		},
		[]string{"kind"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(ActivitiesFinished)
	prometheus.MustRegister(SpeedFlags)
	prometheus.MustRegister(XPAwarded)
	prometheus.MustRegister(LeaguePromotions)
	prometheus.MustRegister(GeneratorFailures)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		RequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
