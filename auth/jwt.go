package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the verification window applied when an Issuer is
// constructed without an explicit TTL.
const DefaultTokenTTL = time.Minute

// tokenClaims is the wire representation of an Identity inside a JWT.
type tokenClaims struct {
	jwt.RegisteredClaims
	Role        Role         `json:"role"`
	Permissions []Permission `json:"permissions"`
}

// Issuer mints signed HS256 tokens for verified users.
//
// The signing secret is process-wide configuration resolved once at startup;
// constructing an Issuer without one is a hard error, never a fallback.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates a token issuer. ttl <= 0 selects DefaultTokenTTL.
func NewIssuer(secret []byte, ttl time.Duration) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("auth: signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{secret: secret, ttl: ttl, now: time.Now}, nil
}

// Issue builds claims from the user's current role and permission snapshot
// and returns the signed compact token string.
func (i *Issuer) Issue(user *User) (string, error) {
	if user == nil {
		return "", errors.New("auth: user is required")
	}

	issuedAt := i.now()
	perms := make([]Permission, len(user.Permissions))
	copy(perms, user.Permissions)

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.ttl)),
		},
		Role:        user.Role,
		Permissions: perms,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// Verifier validates presented tokens against the signing secret.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

// NewVerifier creates a token verifier.
func NewVerifier(secret []byte) (*Verifier, error) {
	if len(secret) == 0 {
		return nil, errors.New("auth: signing secret is required")
	}
	return &Verifier{secret: secret, now: time.Now}, nil
}

// Verify checks structure, signature, and expiry, in that order, and returns
// the decoded identity. Failures map onto the package's sentinel errors:
// ErrTokenMalformed, ErrInvalidSignature, ErrTokenExpired. The identity is
// returned exactly as encoded; no enrichment happens here.
func (v *Verifier) Verify(tokenString string) (*Identity, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrInvalidSignature
	}

	identity := &Identity{
		Subject:     claims.Subject,
		Role:        claims.Role,
		Permissions: claims.Permissions,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}
