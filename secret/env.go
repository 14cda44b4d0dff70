package secret

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// EnvProvider resolves secrets from the process environment.
//
// A ref is either a plain variable name ("AUTHGATE_SIGNING_SECRET") or a
// `${VAR}` expression, which is expanded with strict-missing semantics.
type EnvProvider struct{}

// NewEnvProvider creates an environment-backed provider.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

// Name returns "env".
func (p *EnvProvider) Name() string {
	return "env"
}

// Resolve returns the value of the referenced variable. A variable that is
// unset or empty yields an error; there is no fallback value.
func (p *EnvProvider) Resolve(_ context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("secret: empty reference")
	}

	if strings.Contains(ref, "$") {
		value, err := ExpandEnvStrict(ref)
		if err != nil {
			return "", err
		}
		if value == "" {
			return "", fmt.Errorf("secret: reference %q resolved to empty value", ref)
		}
		return value, nil
	}

	value, ok := os.LookupEnv(ref)
	if !ok || value == "" {
		return "", fmt.Errorf("secret: environment variable %s is not set", ref)
	}
	return value, nil
}

// Close is a no-op for the environment provider.
func (p *EnvProvider) Close() error {
	return nil
}

// Ensure EnvProvider implements Provider
var _ Provider = (*EnvProvider)(nil)
