package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/pkg/sessiontoken"
)

type stubAdminRepo struct {
	byEmail map[string]*domain.AdminUser
	err     error
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{byEmail: make(map[string]*domain.AdminUser)}
}

func (r *stubAdminRepo) add(email, password string, role domain.Role, active bool) *domain.AdminUser {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &domain.AdminUser{
		ID:           "id-" + email,
		Email:        email,
		Username:     email[:1],
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     active,
	}
	r.byEmail[email] = u
	return u
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.AdminUser, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.AdminUser, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byEmail {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) Create(_ context.Context, u *domain.AdminUser) (*domain.AdminUser, error) {
	if _, exists := r.byEmail[u.Email]; exists {
		return nil, domain.ErrAdminExists
	}
	r.byEmail[u.Email] = u
	return u, nil
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newStubAdminRepo()
	repo.add("admin@example.com", "admin123", domain.RoleSuperAdmin, true)
	svc := NewAuthService(repo, sessiontoken.New("secret", time.Hour))

	identity, err := svc.Authenticate(context.Background(), "admin@example.com", "admin123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if identity.Role != domain.RoleSuperAdmin {
		t.Fatalf("unexpected role: %s", identity.Role)
	}
	if identity.Email != "admin@example.com" {
		t.Fatalf("unexpected email: %s", identity.Email)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	repo := newStubAdminRepo()
	repo.add("admin@example.com", "admin123", domain.RoleAdmin, true)
	svc := NewAuthService(repo, sessiontoken.New("secret", time.Hour))

	if _, err := svc.Authenticate(context.Background(), "admin@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownAccount(t *testing.T) {
	svc := NewAuthService(newStubAdminRepo(), sessiontoken.New("secret", time.Hour))

	// Unknown account and wrong password must be indistinguishable.
	if _, err := svc.Authenticate(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_InactiveAccount(t *testing.T) {
	repo := newStubAdminRepo()
	repo.add("gone@example.com", "correct", domain.RoleAdmin, false)
	svc := NewAuthService(repo, sessiontoken.New("secret", time.Hour))

	// Correct password on a deactivated account still fails uniformly.
	if _, err := svc.Authenticate(context.Background(), "gone@example.com", "correct"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_EmptyInput(t *testing.T) {
	svc := NewAuthService(newStubAdminRepo(), sessiontoken.New("secret", time.Hour))

	if _, err := svc.Authenticate(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "a@b.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Authenticate_StoreFailure(t *testing.T) {
	repo := newStubAdminRepo()
	storeErr := errors.New("connection refused")
	repo.err = storeErr
	svc := NewAuthService(repo, sessiontoken.New("secret", time.Hour))

	// Store failures propagate; they must not be masked as bad credentials.
	if _, err := svc.Authenticate(context.Background(), "admin@example.com", "pw"); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestAuthService_Login_IssuesVerifiableToken(t *testing.T) {
	repo := newStubAdminRepo()
	repo.add("admin@example.com", "admin123", domain.RoleSuperAdmin, true)
	codec := sessiontoken.New("secret", time.Hour)
	svc := NewAuthService(repo, codec)

	token, identity, err := svc.Login(context.Background(), "admin@example.com", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	decoded, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if decoded.ID != identity.ID || decoded.Role != string(identity.Role) {
		t.Fatalf("token identity mismatch: %+v vs %+v", decoded, identity)
	}
	if decoded.Username != identity.Username || decoded.Name != identity.Name {
		t.Fatalf("token identity mismatch: %+v vs %+v", decoded, identity)
	}
}

func TestAuthService_Login_FailureIssuesNoToken(t *testing.T) {
	repo := newStubAdminRepo()
	repo.add("admin@example.com", "admin123", domain.RoleAdmin, true)
	svc := NewAuthService(repo, sessiontoken.New("secret", time.Hour))

	token, _, err := svc.Login(context.Background(), "admin@example.com", "bad")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Fatalf("token issued on failed login")
	}
}
