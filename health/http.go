package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// LivenessHandler returns an HTTP handler for liveness probes.
// This is a simple check that the process is running.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// ReadinessResponse is the JSON body of the readiness endpoint.
type ReadinessResponse struct {
	Status    string                   `json:"status"`
	Timestamp string                   `json:"timestamp"`
	Checks    map[string]CheckResponse `json:"checks,omitempty"`
}

// CheckResponse reports one checker's outcome.
type CheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ReadinessHandler returns an HTTP handler that runs the given checkers and
// reports 200 while all pass and 503 once any is unhealthy.
func ReadinessHandler(checkers ...Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		overall := StatusHealthy
		checks := make(map[string]CheckResponse, len(checkers))
		for _, c := range checkers {
			result := c.Check(ctx)
			if result.Status > overall {
				overall = result.Status
			}

			cr := CheckResponse{
				Status:  result.Status.String(),
				Message: result.Message,
			}
			if result.Error != nil {
				cr.Error = result.Error.Error()
			}
			checks[c.Name()] = cr
		}

		w.Header().Set("Content-Type", "application/json")
		if overall == StatusUnhealthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}

		_ = json.NewEncoder(w).Encode(ReadinessResponse{
			Status:    overall.String(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    checks,
		})
	}
}
