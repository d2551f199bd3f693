package ports

import (
	"context"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
)

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	// Authenticate checks an email/password pair against the account store.
	// Missing, inactive, and wrong-password accounts are indistinguishable
	// to the caller (domain.ErrInvalidCredentials).
	Authenticate(ctx context.Context, email, password string) (domain.Identity, error)

	// Login authenticates and, on success, issues a signed session token for
	// the resolved identity.
	Login(ctx context.Context, email, password string) (string, domain.Identity, error)
}
