package auth

import "time"

// Role is a named user category. The role tags along in token claims for
// auditing; permissions are the authorization-relevant data.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleReader Role = "READER"
)

// Permission is an atomic capability tag required to perform an operation.
type Permission string

const (
	PermissionRead  Permission = "READ"
	PermissionWrite Permission = "WRITE"
)

// Identity represents the claims decoded from a verified token.
//
// Permissions are a snapshot copied from the user at issuance time; later
// changes to a user's permission set never affect already-issued tokens.
type Identity struct {
	// Subject is the unique identifier of the principal (the user's email).
	Subject string

	// Role is the user's role tag at issuance time.
	Role Role

	// Permissions are the permissions the user held at issuance time.
	Permissions []Permission

	// IssuedAt is when the token was issued.
	IssuedAt time.Time

	// ExpiresAt is when the token stops being valid.
	ExpiresAt time.Time
}

// HasPermission checks if the identity holds a specific permission.
func (id *Identity) HasPermission(perm Permission) bool {
	for _, p := range id.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// HasAllPermissions checks if the identity holds every given permission
// (subset test, not equality).
func (id *Identity) HasAllPermissions(perms []Permission) bool {
	for _, p := range perms {
		if !id.HasPermission(p) {
			return false
		}
	}
	return true
}

// IsExpired checks if the identity has expired.
func (id *Identity) IsExpired(now time.Time) bool {
	if id.ExpiresAt.IsZero() {
		return false
	}
	return now.After(id.ExpiresAt)
}
