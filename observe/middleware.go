package observe

import (
	"net/http"
	"time"
)

// Middleware wraps HTTP handlers with request telemetry (tracing, metrics,
// logging).
//
// Contract:
//   - Concurrency: Wrap() returns a handler safe for concurrent use.
//   - Context: the span context is propagated to the wrapped handler.
//   - Transparency: the response produced by the wrapped handler is passed
//     through unmodified.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}

// Wrap instruments next with a span, request metrics, and an access log
// entry, labeled by the given route metadata.
func (m *Middleware) Wrap(meta RouteMeta, next http.Handler) http.Handler {
	routeLogger := m.logger.WithRoute(meta)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.StartSpan(r.Context(), meta)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r.WithContext(ctx))

		duration := time.Since(start)
		m.tracer.EndSpan(span, rec.status)
		m.metrics.RecordRequest(ctx, meta, rec.status, duration)

		fields := []Field{
			{Key: "status", Value: rec.status},
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}
		if rec.status >= 500 {
			routeLogger.Error(ctx, "request failed", fields...)
		} else {
			routeLogger.Info(ctx, "request handled", fields...)
		}
	})
}

// statusRecorder captures the response status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wrote {
		r.status = status
		r.wrote = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wrote = true
	return r.ResponseWriter.Write(b)
}
