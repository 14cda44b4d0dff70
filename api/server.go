package api

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonwraymond/authgate/auth"
	"github.com/jonwraymond/authgate/health"
	"github.com/jonwraymond/authgate/observe"
)

// Server is the authgate HTTP server.
//
// All authentication state is carried by tokens; the server keeps no
// per-request or per-session state beyond the entity id counter of the
// placeholder create handler.
type Server struct {
	cfg       Config
	store     *auth.CredentialStore
	issuer    *auth.Issuer
	verifier  *auth.Verifier
	telemetry *observe.Middleware
	logger    observe.Logger

	httpServer   *http.Server
	nextEntityID atomic.Int64
}

// NewServer wires handlers, guards, and telemetry into a server.
func NewServer(cfg Config, store *auth.CredentialStore, issuer *auth.Issuer, verifier *auth.Verifier, obs observe.Observer) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	telemetry, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		return nil, fmt.Errorf("api: building telemetry middleware: %w", err)
	}

	return &Server{
		cfg:       cfg,
		store:     store,
		issuer:    issuer,
		verifier:  verifier,
		telemetry: telemetry,
		logger:    obs.Logger(),
	}, nil
}

// Handler builds the complete route table. Guards are constructed here, once,
// and reused for every request.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	readGuard := auth.RequireAll(s.verifier, auth.PermissionRead)
	writeGuard := auth.RequireAll(s.verifier, auth.PermissionWrite)

	s.route(mux, "POST", "/login", http.HandlerFunc(s.handleLogin))
	s.route(mux, "GET", "/entities", readGuard.WrapFunc(s.handleListEntities))
	s.route(mux, "POST", "/entities", writeGuard.WrapFunc(s.handleCreateEntity))

	mux.Handle("GET /healthz", health.LivenessHandler())
	mux.Handle("GET /readyz", health.ReadinessHandler(s.readinessCheckers()...))
	if s.cfg.ExposeMetrics {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	return withRequestID(mux)
}

func (s *Server) route(mux *http.ServeMux, method, pattern string, handler http.Handler) {
	meta := observe.RouteMeta{Method: method, Route: pattern}
	mux.Handle(method+" "+pattern, s.telemetry.Wrap(meta, handler))
}

func (s *Server) readinessCheckers() []health.Checker {
	return []health.Checker{
		health.NewCheckerFunc("credentials", func(context.Context) health.Result {
			if s.store.Len() == 0 {
				return health.Unhealthy("credential store is empty", nil)
			}
			return health.Healthy(fmt.Sprintf("%d users loaded", s.store.Len()))
		}),
		health.NewCheckerFunc("token_issuer", func(context.Context) health.Result {
			if s.issuer == nil || s.verifier == nil {
				return health.Unhealthy("signing secret not configured", nil)
			}
			return health.Healthy("configured")
		}),
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api: http server: %w", err)
	}
	return nil
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api: shutdown: %w", err)
	}
	return nil
}
