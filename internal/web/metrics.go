package web

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/showcase-apps/showcase/internal/config"
)

var (
	// requestDuration is registered once, New may run more than once per process.
	requestDuration     *prometheus.HistogramVec //nolint:gochecknoglobals
	requestDurationOnce sync.Once                //nolint:gochecknoglobals
)

type metrics struct {
	duration *prometheus.HistogramVec
	app      string
}

func newMetrics(app config.App) metrics {
	requestDurationOnce.Do(func() {
		requestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests, differentiated by app, method, route and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"app", "method", "route", "status"},
		)
	})

	return metrics{duration: requestDuration, app: string(app)}
}

func (m metrics) handler(c fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	// route patterns keep the label cardinality bounded
	m.duration.
		WithLabelValues(m.app, c.Method(), c.Route().Path, strconv.Itoa(c.Response().StatusCode())).
		Observe(time.Since(start).Seconds())

	return err //nolint:wrapcheck
}
