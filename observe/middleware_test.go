package observe

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// captureMetrics records RecordRequest calls for assertions.
type captureMetrics struct {
	meta     RouteMeta
	status   int
	duration time.Duration
	calls    int
}

func (c *captureMetrics) RecordRequest(_ context.Context, meta RouteMeta, status int, duration time.Duration) {
	c.meta = meta
	c.status = status
	c.duration = duration
	c.calls++
}

func TestMiddleware_RecordsStatusAndLogs(t *testing.T) {
	var buf bytes.Buffer
	metrics := &captureMetrics{}
	mw := NewMiddleware(NewNoopTracer(), metrics, NewLoggerWithWriter("info", &buf))

	meta := RouteMeta{Method: "POST", Route: "/entities"}
	handler := mw.Wrap(meta, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/entities", nil))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if metrics.calls != 1 {
		t.Fatalf("RecordRequest calls = %d, want 1", metrics.calls)
	}
	if metrics.status != http.StatusCreated {
		t.Errorf("recorded status = %d, want %d", metrics.status, http.StatusCreated)
	}
	if metrics.meta != meta {
		t.Errorf("recorded meta = %+v, want %+v", metrics.meta, meta)
	}
	if buf.Len() == 0 {
		t.Error("no access log entry written")
	}
}

func TestMiddleware_DefaultsToOK(t *testing.T) {
	metrics := &captureMetrics{}
	mw := NewMiddleware(NewNoopTracer(), metrics, NewLoggerWithWriter("error", &bytes.Buffer{}))

	handler := mw.Wrap(RouteMeta{Method: "GET", Route: "/healthz"},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK")) // implicit 200
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if metrics.status != http.StatusOK {
		t.Errorf("recorded status = %d, want %d", metrics.status, http.StatusOK)
	}
}

func TestMiddleware_PassesBodyThrough(t *testing.T) {
	mw := NewMiddleware(NewNoopTracer(), NoopMetrics{}, NewLoggerWithWriter("error", &bytes.Buffer{}))

	handler := mw.Wrap(RouteMeta{Method: "GET", Route: "/entities"},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":5}]`))
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/entities", nil))

	if rec.Body.String() != `[{"id":5}]` {
		t.Errorf("body = %q, want passthrough", rec.Body.String())
	}
}
