// Package sessiontoken issues and verifies the signed, time-boxed tokens that
// carry an authenticated admin identity between requests.
//
// Tokens are HS256 JWTs signed with a server-held secret. Verification is a
// pure offline check: the codec never touches storage, so a token stands or
// falls on its own signed contents. Expiry is strict: a token presented at
// exactly its expiry instant is already dead.
package sessiontoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the validity window applied when no TTL is configured.
const DefaultTTL = 24 * time.Hour

var (
	// ErrMalformed means the token could not be parsed at all.
	ErrMalformed = errors.New("sessiontoken: malformed token")
	// ErrInvalidSignature means the token parsed but was not signed with
	// our secret (tampered or forged).
	ErrInvalidSignature = errors.New("sessiontoken: invalid signature")
	// ErrExpired means the token was authentic but its validity window has
	// closed.
	ErrExpired = errors.New("sessiontoken: token expired")
)

// Identity is the payload carried inside a session token. Role is kept as a
// plain string here; the role gate is responsible for closing the set.
type Identity struct {
	ID       string
	Email    string
	Username string
	Name     string
	Role     string
}

type claims struct {
	jwt.RegisteredClaims

	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Codec signs and verifies session tokens with a shared symmetric secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New returns a Codec signing with secret. A non-positive ttl falls back to
// DefaultTTL.
func New(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL reports the validity window applied to issued tokens.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue encodes the identity plus issued-at and expiry claims and signs the
// result. The secret itself never leaves the codec.
func (c *Codec) Issue(id Identity) (string, error) {
	now := c.now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Email:    id.Email,
		Username: id.Username,
		Name:     id.Name,
		Role:     id.Role,
	})
	return t.SignedString(c.secret)
}

// Verify parses and validates a token against the current clock.
func (c *Codec) Verify(token string) (Identity, error) {
	return c.VerifyAt(token, c.now())
}

// VerifyAt parses the token, checks the signature, and enforces expiry
// against the supplied instant (now >= exp means expired). On success the
// embedded identity is reconstructed from the claims.
func (c *Codec) VerifyAt(token string, at time.Time) (Identity, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return Identity{}, ErrInvalidSignature
		}
		return Identity{}, ErrMalformed
	}

	if cl.ExpiresAt == nil {
		return Identity{}, ErrMalformed
	}
	if !at.Before(cl.ExpiresAt.Time) {
		return Identity{}, ErrExpired
	}

	return Identity{
		ID:       cl.Subject,
		Email:    cl.Email,
		Username: cl.Username,
		Name:     cl.Name,
		Role:     cl.Role,
	}, nil
}
