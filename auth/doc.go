// Package auth provides authentication and authorization primitives for the
// authgate service.
//
// It covers the full credential-to-decision flow: a read-only CredentialStore
// of users with argon2id password hashes, an Issuer that mints signed
// time-limited HS256 tokens, a Verifier that validates presented tokens, and
// a Guard that enforces per-route permission requirements over net/http
// handlers. The package is transport-agnostic apart from the Guard, which
// speaks HTTP bearer semantics.
package auth
