package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
	"github.com/burningbushdesign/storefront-api/pkg/sessiontoken"
)

// AuthService implements credential verification and session issuance.
type AuthService struct {
	repo  ports.AdminRepository
	codec *sessiontoken.Codec
}

func NewAuthService(repo ports.AdminRepository, codec *sessiontoken.Codec) *AuthService {
	return &AuthService{repo: repo, codec: codec}
}

// Authenticate checks an email/password pair against the account store.
// A missing account, an inactive account, and a wrong password all collapse
// to domain.ErrInvalidCredentials so callers cannot enumerate accounts.
// Store failures propagate unchanged.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (domain.Identity, error) {
	if email == "" || password == "" {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return domain.Identity{}, domain.ErrInvalidCredentials
		}
		return domain.Identity{}, err
	}

	if !user.IsActive {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	return user.Identity(), nil
}

// Login authenticates and issues a signed session token for the identity.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.Identity, error) {
	identity, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", domain.Identity{}, err
	}

	token, err := s.codec.Issue(sessiontoken.Identity{
		ID:       identity.ID,
		Email:    identity.Email,
		Username: identity.Username,
		Name:     identity.Name,
		Role:     string(identity.Role),
	})
	if err != nil {
		return "", domain.Identity{}, err
	}

	return token, identity, nil
}

// HashPassword hashes a plaintext password the same way account creation
// does, so seeded and runtime-created accounts verify identically.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
