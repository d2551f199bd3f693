package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/pkg/sessiontoken"
)

type stubAdminRepo struct {
	byID map[string]*domain.AdminUser
	err  error
}

func (s *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.AdminUser, error) {
	for _, u := range s.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (s *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.AdminUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	return u, nil
}

func (s *stubAdminRepo) Create(_ context.Context, u *domain.AdminUser) (*domain.AdminUser, error) {
	return u, nil
}

func activeAdmin() *domain.AdminUser {
	return &domain.AdminUser{
		ID:       "a-1",
		Email:    "admin@burningbushdesign.com",
		Username: "admin",
		Name:     "Admin",
		Role:     domain.RoleSuperAdmin,
		IsActive: true,
	}
}

func issueFor(t *testing.T, codec *sessiontoken.Codec, u *domain.AdminUser) string {
	t.Helper()
	token, err := codec.Issue(sessiontoken.Identity{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Name:     u.Name,
		Role:     string(u.Role),
	})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return token
}

// runSession sends a request with the given cookie through the Session
// middleware and a probe handler that records whether it was reached.
func runSession(codec *sessiontoken.Codec, repo *stubAdminRepo, policy SessionPolicy, cookie *http.Cookie) (*httptest.ResponseRecorder, bool, domain.Identity, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var reached bool
	var got domain.Identity
	h := Session(codec, repo, policy, zerolog.Nop())(func(c echo.Context) error {
		reached = true
		got, _ = IdentityFromContext(c)
		return c.NoContent(http.StatusOK)
	})
	err := h(c)
	return rec, reached, got, err
}

func TestSession_ValidTokenPasses(t *testing.T) {
	codec := sessiontoken.New("secret", time.Hour)
	user := activeAdmin()
	repo := &stubAdminRepo{byID: map[string]*domain.AdminUser{user.ID: user}}
	cookie := &http.Cookie{Name: SessionCookieName, Value: issueFor(t, codec, user)}

	_, reached, got, err := runSession(codec, repo, SessionPolicy{TrustMode: TrustRevalidate}, cookie)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reached {
		t.Fatal("handler was not reached")
	}
	if got.ID != user.ID || got.Role != domain.RoleSuperAdmin {
		t.Errorf("identity = %+v, want id %q role %q", got, user.ID, domain.RoleSuperAdmin)
	}
}

func TestSession_MissingCookie(t *testing.T) {
	codec := sessiontoken.New("secret", time.Hour)
	repo := &stubAdminRepo{byID: map[string]*domain.AdminUser{}}

	_, reached, _, err := runSession(codec, repo, SessionPolicy{TrustMode: TrustRevalidate}, nil)
	if reached {
		t.Fatal("handler must not run without a session cookie")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}

func TestSession_TamperedTokenClearsCookie(t *testing.T) {
	codec := sessiontoken.New("secret", time.Hour)
	user := activeAdmin()
	repo := &stubAdminRepo{byID: map[string]*domain.AdminUser{user.ID: user}}

	token := issueFor(t, codec, user)
	tampered := token[:len(token)-2] + "xx"
	cookie := &http.Cookie{Name: SessionCookieName, Value: tampered}

	rec, reached, _, err := runSession(codec, repo, SessionPolicy{TrustMode: TrustRevalidate}, cookie)
	if reached {
		t.Fatal("handler must not run with a tampered token")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
	assertCookieCleared(t, rec)
}

func TestSession_ExpiredToken(t *testing.T) {
	issuer := sessiontoken.New("secret", time.Nanosecond)
	verifier := sessiontoken.New("secret", time.Hour)
	user := activeAdmin()
	repo := &stubAdminRepo{byID: map[string]*domain.AdminUser{user.ID: user}}
	cookie := &http.Cookie{Name: SessionCookieName, Value: issueFor(t, issuer, user)}

	rec, reached, _, err := runSession(verifier, repo, SessionPolicy{TrustMode: TrustRevalidate}, cookie)
	if reached {
		t.Fatal("handler must not run with an expired token")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
	assertCookieCleared(t, rec)
}

func TestSession_RevalidateRejectsDeactivatedAccount(t *testing.T) {
	codec := sessiontoken.New("secret", time.Hour)
	user := activeAdmin()
	cookie := &http.Cookie{Name: SessionCookieName, Value: issueFor(t, codec, user)}

	user.IsActive = false
	repo := &stubAdminRepo{byID: map[string]*domain.AdminUser{user.ID: user}}

	rec, reached, _, err := runSession(codec, repo, SessionPolicy{TrustMode: TrustRevalidate}, cookie)
	if reached {
		t.Fatal("deactivated account must be rejected under revalidation")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
	assertCookieCleared(t, rec)
}

func TestSession_TokenOnlyAcceptsDeactivatedAccount(t *testing.T) {
	codec := sessiontoken.New("secret", time.Hour)
	user := activeAdmin()
	cookie := &http.Cookie{Name: SessionCookieName, Value: issueFor(t, codec, user)}

	user.IsActive = false
	repo := &stubAdminRepo{byID: map[string]*domain.AdminUser{user.ID: user}}

	_, reached, got, err := runSession(codec, repo, SessionPolicy{TrustMode: TrustToken}, cookie)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reached {
		t.Fatal("token-only mode must accept an authentic unexpired token")
	}
	if got.ID != user.ID {
		t.Errorf("identity id = %q, want %q", got.ID, user.ID)
	}
}

func TestSession_RevalidateUsesStoreRecord(t *testing.T) {
	codec := sessiontoken.New("secret", time.Hour)
	user := activeAdmin()
	cookie := &http.Cookie{Name: SessionCookieName, Value: issueFor(t, codec, user)}

	// Demote the account after the token was minted.
	demoted := *user
	demoted.Role = domain.RoleStaff
	repo := &stubAdminRepo{byID: map[string]*domain.AdminUser{user.ID: &demoted}}

	_, reached, got, err := runSession(codec, repo, SessionPolicy{TrustMode: TrustRevalidate}, cookie)
	if err != nil || !reached {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if got.Role != domain.RoleStaff {
		t.Errorf("identity role = %q, want the store's %q", got.Role, domain.RoleStaff)
	}
}

func TestSession_UnknownRoleInToken(t *testing.T) {
	codec := sessiontoken.New("secret", time.Hour)
	user := activeAdmin()
	repo := &stubAdminRepo{byID: map[string]*domain.AdminUser{user.ID: user}}

	token, err := codec.Issue(sessiontoken.Identity{ID: user.ID, Role: "OWNER"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	cookie := &http.Cookie{Name: SessionCookieName, Value: token}

	rec, reached, _, err := runSession(codec, repo, SessionPolicy{TrustMode: TrustToken}, cookie)
	if reached {
		t.Fatal("a token with an unknown role must be rejected")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
	assertCookieCleared(t, rec)
}

func TestSession_StoreFailurePropagates(t *testing.T) {
	codec := sessiontoken.New("secret", time.Hour)
	user := activeAdmin()
	cookie := &http.Cookie{Name: SessionCookieName, Value: issueFor(t, codec, user)}
	repo := &stubAdminRepo{err: errors.New("store unavailable")}

	_, reached, _, err := runSession(codec, repo, SessionPolicy{TrustMode: TrustRevalidate}, cookie)
	if reached {
		t.Fatal("handler must not run when revalidation fails")
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		t.Fatalf("store failure must not be converted to an HTTP error here, got %v", err)
	}
}

func TestParseTrustMode(t *testing.T) {
	for _, valid := range []string{"token-only", "revalidate-each-request"} {
		if _, err := ParseTrustMode(valid); err != nil {
			t.Errorf("ParseTrustMode(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseTrustMode("always-trust"); err == nil {
		t.Error("ParseTrustMode must reject unknown modes")
	}
}

func assertCookieCleared(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	res := rec.Result()
	for _, ck := range res.Cookies() {
		if ck.Name == SessionCookieName {
			if ck.Value != "" || ck.MaxAge >= 0 {
				t.Errorf("session cookie not cleared: value=%q maxage=%d", ck.Value, ck.MaxAge)
			}
			return
		}
	}
	t.Error("no Set-Cookie clearing the session cookie")
}
