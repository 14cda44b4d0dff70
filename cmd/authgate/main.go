// Command authgate runs the authentication gateway: credential login,
// signed bearer tokens, and permission-guarded entity endpoints.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/authgate/api"
	"github.com/jonwraymond/authgate/auth"
	"github.com/jonwraymond/authgate/observe"
	"github.com/jonwraymond/authgate/secret"
)

const (
	version          = "1.0.0"
	signingSecretVar = "AUTHGATE_SIGNING_SECRET"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("authgate: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := api.ConfigFromEnv()
	if err != nil {
		return err
	}

	// No configured secret is a fatal configuration error. There is no
	// default to fall back to.
	signingSecret, err := secret.NewEnvProvider().Resolve(ctx, signingSecretVar)
	if err != nil {
		return err
	}

	obs, err := observe.NewObserver(ctx, observeConfigFromEnv())
	if err != nil {
		return err
	}
	defer func() { _ = obs.Shutdown(context.Background()) }()

	store, err := seedCredentialStore()
	if err != nil {
		return err
	}

	issuer, err := auth.NewIssuer([]byte(signingSecret), cfg.TokenTTL)
	if err != nil {
		return err
	}
	verifier, err := auth.NewVerifier([]byte(signingSecret))
	if err != nil {
		return err
	}

	server, err := api.NewServer(cfg, store, issuer, verifier, obs)
	if err != nil {
		return err
	}

	obs.Logger().Info(ctx, "starting authgate",
		observe.Field{Key: "version", Value: version},
		observe.Field{Key: "addr", Value: cfg.Addr},
		observe.Field{Key: "users", Value: store.Len()},
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		return server.Stop(context.Background())
	})

	return g.Wait()
}

// seedCredentialStore builds the fixed demo user set. Hashes are computed at
// startup so plaintext never lives beyond initialization.
func seedCredentialStore() (*auth.CredentialStore, error) {
	params := auth.DefaultArgon2idParams()

	seeds := []struct {
		email    string
		password string
		role     auth.Role
		perms    []auth.Permission
	}{
		{"andrei@gmail.com", "12345", auth.RoleAdmin, []auth.Permission{auth.PermissionWrite, auth.PermissionRead}},
		{"vasea@gmail.com", "12345", auth.RoleReader, []auth.Permission{auth.PermissionRead}},
	}

	users := make([]auth.User, 0, len(seeds))
	for _, s := range seeds {
		hash, err := auth.HashPassword(s.password, params)
		if err != nil {
			return nil, err
		}
		users = append(users, auth.User{
			Email:        s.email,
			PasswordHash: hash,
			Role:         s.role,
			Permissions:  s.perms,
		})
	}

	return auth.NewCredentialStore(users)
}

func observeConfigFromEnv() observe.Config {
	cfg := observe.Config{
		ServiceName: "authgate",
		Version:     version,
		Logging: observe.LoggingConfig{
			Enabled: true,
			Level:   os.Getenv("AUTHGATE_LOG_LEVEL"),
		},
	}

	if exp := os.Getenv("AUTHGATE_METRICS_EXPORTER"); exp != "" && exp != "none" {
		cfg.Metrics = observe.MetricsConfig{Enabled: true, Exporter: exp}
	}
	if exp := os.Getenv("AUTHGATE_TRACING_EXPORTER"); exp != "" && exp != "none" {
		pct := 1.0
		if v := os.Getenv("AUTHGATE_TRACING_SAMPLE_PCT"); v != "" {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				pct = parsed
			}
		}
		cfg.Tracing = observe.TracingConfig{Enabled: true, Exporter: exp, SamplePct: pct}
	}

	return cfg
}
