package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func parseLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v\nOutput: %s", err, buf.String())
	}
	return entry
}

func TestLogger_IncludesRouteFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	routeLogger := logger.WithRoute(RouteMeta{Method: "GET", Route: "/entities"})
	routeLogger.Info(context.Background(), "request handled")

	entry := parseLogLine(t, &buf)

	if v, _ := entry["http.method"].(string); v != "GET" {
		t.Errorf("http.method = %v, want GET", entry["http.method"])
	}
	if v, _ := entry["http.route"].(string); v != "/entities" {
		t.Errorf("http.route = %v, want /entities", entry["http.route"])
	}
	if v, _ := entry["msg"].(string); v != "request handled" {
		t.Errorf("msg = %v, want request handled", entry["msg"])
	}
}

func TestLogger_RedactsCredentialFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "login attempt",
		Field{Key: "password", Value: "12345"},
		Field{Key: "token", Value: "eyJ..."},
		Field{Key: "email", Value: "andrei@gmail.com"},
	)

	entry := parseLogLine(t, &buf)

	if v, _ := entry["password"].(string); v != "[REDACTED]" {
		t.Errorf("password = %v, want [REDACTED]", entry["password"])
	}
	if v, _ := entry["token"].(string); v != "[REDACTED]" {
		t.Errorf("token = %v, want [REDACTED]", entry["token"])
	}
	if v, _ := entry["email"].(string); v != "andrei@gmail.com" {
		t.Errorf("email = %v, want andrei@gmail.com", entry["email"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)

	logger.Debug(context.Background(), "dropped")
	logger.Info(context.Background(), "dropped")
	if buf.Len() != 0 {
		t.Errorf("below-level entries were written: %s", buf.String())
	}

	logger.Warn(context.Background(), "kept")
	if buf.Len() == 0 {
		t.Error("warn entry was not written")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
