package observe

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records telemetry for handled HTTP requests.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordRequest records one handled request with its response status
	// and duration.
	RecordRequest(ctx context.Context, meta RouteMeta, status int, duration time.Duration)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	rejectCount  metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetrics creates a Metrics instance with the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("Total number of handled HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	rejectCount, err := meter.Int64Counter(
		"http.server.rejections",
		metric.WithDescription("Requests rejected with 401 or 403"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"http.server.duration_ms",
		metric.WithDescription("Request handling duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		totalCount:   totalCount,
		rejectCount:  rejectCount,
		durationHist: durationHist,
	}, nil
}

// RecordRequest records metrics for one handled request.
func (m *metricsImpl) RecordRequest(ctx context.Context, meta RouteMeta, status int, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", meta.Method),
		attribute.String("http.route", meta.Route),
		attribute.String("http.response.status_code", strconv.Itoa(status)),
	}
	opt := metric.WithAttributes(attrs...)

	m.totalCount.Add(ctx, 1, opt)

	if status == 401 || status == 403 {
		m.rejectCount.Add(ctx, 1, opt)
	}

	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// NoopMetrics is a metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) RecordRequest(ctx context.Context, meta RouteMeta, status int, duration time.Duration) {
}
