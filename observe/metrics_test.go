package observe

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestMetrics_RecordRequest(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background())

	metrics, err := NewMetrics(provider.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	meta := RouteMeta{Method: "GET", Route: "/entities"}
	metrics.RecordRequest(context.Background(), meta, 200, 5*time.Millisecond)
	metrics.RecordRequest(context.Background(), meta, 403, 1*time.Millisecond)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	found := map[string]bool{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			found[m.Name] = true

			if m.Name == "http.server.rejections" {
				sum, ok := m.Data.(metricdata.Sum[int64])
				if !ok {
					t.Fatalf("rejections data is %T, want Sum[int64]", m.Data)
				}
				var total int64
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
				if total != 1 {
					t.Errorf("rejections = %d, want 1 (only the 403)", total)
				}
			}
		}
	}

	for _, name := range []string{"http.server.requests", "http.server.rejections", "http.server.duration_ms"} {
		if !found[name] {
			t.Errorf("instrument %q was not recorded", name)
		}
	}
}
