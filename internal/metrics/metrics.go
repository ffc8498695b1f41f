// Package metrics registers the Prometheus instruments exposed on /metrics.
package metrics

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ShipmentsCreated counts accepted bookings, labelled by intake source.
	ShipmentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courierhub",
		Name:      "shipments_created_total",
		Help:      "Number of shipments booked.",
	}, []string{"source"})

	// ScansProcessed counts accepted hub scans, labelled by scan type.
	ScansProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courierhub",
		Name:      "hub_scans_processed_total",
		Help:      "Number of hub scan events recorded.",
	}, []string{"scan_type"})

	// StrandedShipments tracks shipments in closed manifests that no hub
	// has scanned in. Updated by the reconciliation job.
	StrandedShipments = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "courierhub",
		Name:      "stranded_shipments",
		Help:      "Shipments in a closed manifest with no arrival scan.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courierhub",
		Name:      "http_requests_total",
		Help:      "HTTP requests served.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "courierhub",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// HTTPMiddleware records request counts and latency per route template.
func HTTPMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			path := ctx.Path()
			timer := prometheus.NewTimer(httpDuration.WithLabelValues(ctx.Request().Method, path))
			err := next(ctx)
			timer.ObserveDuration()

			status := ctx.Response().Status
			if err != nil {
				if httpErr, isHTTPErr := err.(*echo.HTTPError); isHTTPErr {
					status = httpErr.Code
				}
			}
			httpRequests.WithLabelValues(ctx.Request().Method, path, strconv.Itoa(status)).Inc()

			return err
		}
	}
}
