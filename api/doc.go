// Package api implements the authgate HTTP surface: the login endpoint that
// exchanges credentials for a signed token, and the entity endpoints guarded
// by per-route permission requirements.
//
// The entity handlers are deliberately minimal placeholders (a paginated
// generated sequence and an echo-back create); the contract of interest is
// the authorization decision wrapped around them.
package api
