package sessiontoken

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testIdentity() Identity {
	return Identity{
		ID:       "6651f0b2a3c4d5e6f7a8b9c0",
		Email:    "admin@example.com",
		Username: "admin",
		Name:     "Admin User",
		Role:     "SUPER_ADMIN",
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	c := New("secret", time.Hour)

	token, err := c.Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	got, err := c.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != testIdentity() {
		t.Fatalf("identity mismatch: %+v", got)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := New("secret-b", time.Hour).Verify(token); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestCodec_Tampering(t *testing.T) {
	c := New("secret", time.Hour)
	token, err := c.Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Flipping any single byte must never verify silently. Depending on
	// where the flip lands the failure is either a signature mismatch or an
	// unparseable token.
	for i := 0; i < len(token); i++ {
		b := []byte(token)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		mutated := string(b)
		if mutated == token {
			continue
		}

		id, err := c.Verify(mutated)
		if err == nil {
			t.Fatalf("byte %d: tampered token verified", i)
		}
		if !errors.Is(err, ErrInvalidSignature) && !errors.Is(err, ErrMalformed) {
			t.Fatalf("byte %d: unexpected failure kind: %v", i, err)
		}
		if id != (Identity{}) {
			t.Fatalf("byte %d: identity leaked from invalid token: %+v", i, id)
		}
	}
}

func TestCodec_Malformed(t *testing.T) {
	c := New("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := c.Verify(token); !errors.Is(err, ErrMalformed) {
			t.Fatalf("token %q: expected ErrMalformed, got %v", token, err)
		}
	}
}

func TestCodec_ExpiryBoundary(t *testing.T) {
	c := New("secret", time.Hour)
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return issued }

	token, err := c.Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	exp := issued.Add(time.Hour)

	// Strictly before expiry: valid.
	if _, err := c.VerifyAt(token, exp.Add(-time.Second)); err != nil {
		t.Fatalf("token should be valid just before expiry: %v", err)
	}

	// At exactly the expiry instant: already expired.
	if _, err := c.VerifyAt(token, exp); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired at expiry instant, got %v", err)
	}

	// After expiry: expired.
	if _, err := c.VerifyAt(token, exp.Add(time.Minute)); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired after expiry, got %v", err)
	}
}

func TestCodec_DefaultTTL(t *testing.T) {
	if got := New("secret", 0).TTL(); got != DefaultTTL {
		t.Fatalf("expected default TTL %v, got %v", DefaultTTL, got)
	}
	if got := New("secret", -time.Hour).TTL(); got != DefaultTTL {
		t.Fatalf("expected default TTL for negative input, got %v", got)
	}
}

func TestCodec_SecretNeverInToken(t *testing.T) {
	c := New("super-secret-value", time.Hour)
	token, err := c.Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if strings.Contains(token, "super-secret-value") {
		t.Fatalf("secret leaked into token")
	}
}
