package auth

import (
	"testing"
	"time"
)

func TestIdentity_HasPermission(t *testing.T) {
	tests := []struct {
		name       string
		identity   *Identity
		permission Permission
		want       bool
	}{
		{
			name:       "empty permissions",
			identity:   &Identity{Permissions: []Permission{}},
			permission: PermissionRead,
			want:       false,
		},
		{
			name:       "has permission",
			identity:   &Identity{Permissions: []Permission{PermissionWrite, PermissionRead}},
			permission: PermissionWrite,
			want:       true,
		},
		{
			name:       "does not have permission",
			identity:   &Identity{Permissions: []Permission{PermissionRead}},
			permission: PermissionWrite,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.identity.HasPermission(tt.permission); got != tt.want {
				t.Errorf("Identity.HasPermission() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIdentity_HasAllPermissions(t *testing.T) {
	tests := []struct {
		name     string
		identity *Identity
		required []Permission
		want     bool
	}{
		{
			name:     "empty required set always passes",
			identity: &Identity{},
			required: nil,
			want:     true,
		},
		{
			name:     "subset present",
			identity: &Identity{Permissions: []Permission{PermissionWrite, PermissionRead}},
			required: []Permission{PermissionRead},
			want:     true,
		},
		{
			name:     "full set present",
			identity: &Identity{Permissions: []Permission{PermissionWrite, PermissionRead}},
			required: []Permission{PermissionRead, PermissionWrite},
			want:     true,
		},
		{
			name:     "one missing",
			identity: &Identity{Permissions: []Permission{PermissionRead}},
			required: []Permission{PermissionRead, PermissionWrite},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.identity.HasAllPermissions(tt.required); got != tt.want {
				t.Errorf("Identity.HasAllPermissions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIdentity_IsExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"zero expiry never expires", time.Time{}, false},
		{"future expiry", now.Add(time.Minute), false},
		{"exactly at expiry", now, false},
		{"past expiry", now.Add(-time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := &Identity{ExpiresAt: tt.expiresAt}
			if got := id.IsExpired(now); got != tt.want {
				t.Errorf("Identity.IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}
