package auth

import "fmt"

// User is an identity record held by the CredentialStore.
type User struct {
	// Email is the unique lookup key.
	Email string

	// PasswordHash is the argon2id PHC hash of the user's password.
	// Plaintext is never stored or compared directly.
	PasswordHash string

	// Role is the user's role tag.
	Role Role

	// Permissions are the capabilities granted to this user.
	Permissions []Permission
}

// CredentialStore holds the fixed set of user records known at startup.
//
// The store is populated once at construction and never written afterwards,
// so concurrent lookups need no coordination. It must be passed by injection
// into the components that need it, never held as ambient global state.
type CredentialStore struct {
	users map[string]*User // keyed by email
}

// NewCredentialStore creates a store from a fixed list of users.
// Records are copied; the caller's slice is not retained.
func NewCredentialStore(users []User) (*CredentialStore, error) {
	s := &CredentialStore{users: make(map[string]*User, len(users))}
	for i := range users {
		u := users[i]
		if u.Email == "" {
			return nil, fmt.Errorf("auth: user %d has no email", i)
		}
		if u.PasswordHash == "" {
			return nil, fmt.Errorf("auth: user %q has no password hash", u.Email)
		}
		if _, exists := s.users[u.Email]; exists {
			return nil, fmt.Errorf("auth: duplicate user %q", u.Email)
		}
		u.Permissions = append([]Permission(nil), u.Permissions...)
		s.users[u.Email] = &u
	}
	return s, nil
}

// Lookup retrieves a user by email. Returns ErrUserNotFound on a miss.
// Pure read, no side effects.
func (s *CredentialStore) Lookup(email string) (*User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// VerifyPassword checks a candidate password against the user's stored hash.
// The comparison runs over hashes in constant time; the candidate plaintext
// is never logged or retained beyond the call.
func (s *CredentialStore) VerifyPassword(user *User, candidate string) bool {
	if user == nil {
		return false
	}
	ok, err := VerifyPassword(candidate, user.PasswordHash)
	return err == nil && ok
}

// Len returns the number of users in the store.
func (s *CredentialStore) Len() int {
	return len(s.users)
}
