// Package metrics holds the prometheus collectors for the HTTP layer and the
// record stores. Collectors are registered on Registry, which /metrics serves.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tutordesk"

var (
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "code"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	storeOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Record store operations by entity, operation and outcome.",
	}, []string{"entity", "op", "outcome"})

	storeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Record store operation latency.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"entity", "op"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		storeOps,
		storeDuration,
	)
}

// ObserveStoreOp records one store call and how it ended (ok, not_found, error).
func ObserveStoreOp(entity, op, outcome string, elapsed time.Duration) {
	storeOps.WithLabelValues(entity, op, outcome).Inc()
	storeDuration.WithLabelValues(entity, op).Observe(elapsed.Seconds())
}

// Middleware counts requests per matched route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if status < 400 {
					status = 500
				}
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			httpRequests.WithLabelValues(route, c.Request().Method, strconv.Itoa(status)).Inc()
			httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler serves Registry in the prometheus text format.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
