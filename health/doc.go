// Package health exposes liveness and readiness probes for the authgate
// service.
//
// A Checker is any component that can report its health status; the readiness
// handler runs every registered checker and maps the worst result onto the
// HTTP response. The service registers checkers for its credential store and
// signing-secret configuration at startup.
package health
