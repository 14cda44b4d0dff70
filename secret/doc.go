// Package secret resolves process configuration secrets.
//
// The signing secret that anchors token authenticity is resolved through a
// Provider exactly once at startup. A missing secret is a resolution error,
// never a silently-applied default: callers are expected to treat it as a
// fatal configuration failure.
package secret
