package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bakery_http_requests_total",
		Help: "Total number of HTTP requests.",
	},
		[]string{"handler", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bakery_http_request_duration_ms",
		Help:    "HTTP request latency in milliseconds.",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	},
		[]string{"handler"},
	)

	// PresenterErrorsTotal counts errors shown to users by error category.
	PresenterErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bakery_presenter_errors_total",
		Help: "Total number of operation errors reported to users.",
	},
		[]string{"category"},
	)

	OrderEventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bakery_order_events_published_total",
		Help: "Total number of order events written to the broker.",
	},
		[]string{"type"},
	)

	OrderEventsFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bakery_order_events_failed_total",
		Help: "Total number of order events dropped or given up after retries.",
	},
		[]string{"reason"},
	)

	OrderEventQueueLength = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bakery_order_event_queue_length",
		Help: "Current number of order events waiting to be published.",
	})
)

// Middleware records request count and latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(handler, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
