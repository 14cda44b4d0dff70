// Package observe provides request telemetry for the authgate service:
// structured JSON logging, OpenTelemetry tracing and metrics, and an HTTP
// middleware that records all three per handled request.
//
// Telemetry is assembled once at startup into an Observer and injected into
// the server; handlers never touch providers directly. Fields with
// credential-like keys are redacted from log output.
package observe
