package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/burningbushdesign/storefront-api/internal/api/middleware"
	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/service"
	"github.com/burningbushdesign/storefront-api/pkg/sessiontoken"
)

type stubAdminRepo struct {
	byEmail map[string]*domain.AdminUser
}

func (s *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.AdminUser, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	return u, nil
}

func (s *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.AdminUser, error) {
	for _, u := range s.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (s *stubAdminRepo) Create(_ context.Context, u *domain.AdminUser) (*domain.AdminUser, error) {
	s.byEmail[u.Email] = u
	return u, nil
}

func newAuthHandler(t *testing.T) (*AuthHandler, *sessiontoken.Codec) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &stubAdminRepo{byEmail: map[string]*domain.AdminUser{
		"admin@burningbushdesign.com": {
			ID:           "a-1",
			Email:        "admin@burningbushdesign.com",
			Username:     "admin",
			Name:         "Store Admin",
			PasswordHash: string(hash),
			Role:         domain.RoleSuperAdmin,
			IsActive:     true,
		},
	}}
	codec := sessiontoken.New("test-secret", time.Hour)
	svc := service.NewAuthService(repo, codec)
	return NewAuthHandler(svc, codec.TTL(), false), codec
}

func postLogin(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookieName {
			return ck
		}
	}
	return nil
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	h, codec := newAuthHandler(t)
	rec := postLogin(t, h, `{"email":"admin@burningbushdesign.com","password":"admin123"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	ck := sessionCookie(rec)
	if ck == nil {
		t.Fatal("no session cookie set")
	}
	if !ck.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
	if ck.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite = %v, want Lax", ck.SameSite)
	}
	if ck.MaxAge != int(time.Hour.Seconds()) {
		t.Errorf("MaxAge = %d, want %d", ck.MaxAge, int(time.Hour.Seconds()))
	}

	identity, err := codec.Verify(ck.Value)
	if err != nil {
		t.Fatalf("cookie does not hold a verifiable token: %v", err)
	}
	if identity.ID != "a-1" || identity.Role != string(domain.RoleSuperAdmin) {
		t.Errorf("token identity = %+v", identity)
	}

	if strings.Contains(rec.Body.String(), ck.Value) {
		t.Error("token must not be echoed in the response body")
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Errorf("body leaks password material: %s", rec.Body.String())
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	h, _ := newAuthHandler(t)
	rec := postLogin(t, h, `{"email":"admin@burningbushdesign.com","password":"nope"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if sessionCookie(rec) != nil {
		t.Error("failed login must not set a session cookie")
	}
	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestLogin_UnknownAndWrongPasswordLookAlike(t *testing.T) {
	h, _ := newAuthHandler(t)
	wrongPass := postLogin(t, h, `{"email":"admin@burningbushdesign.com","password":"nope"}`)
	unknown := postLogin(t, h, `{"email":"nobody@burningbushdesign.com","password":"nope"}`)

	if wrongPass.Code != unknown.Code {
		t.Errorf("status differs: %d vs %d", wrongPass.Code, unknown.Code)
	}
	if wrongPass.Body.String() != unknown.Body.String() {
		t.Errorf("bodies differ: %q vs %q", wrongPass.Body.String(), unknown.Body.String())
	}
}

func TestLogin_MissingFields(t *testing.T) {
	h, _ := newAuthHandler(t)
	rec := postLogin(t, h, `{"email":"","password":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	h, _ := newAuthHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	ck := sessionCookie(rec)
	if ck == nil {
		t.Fatal("logout must send a Set-Cookie")
	}
	if ck.Value != "" || ck.MaxAge >= 0 {
		t.Errorf("cookie not cleared: value=%q maxage=%d", ck.Value, ck.MaxAge)
	}
}

func TestMe_ReturnsSessionIdentity(t *testing.T) {
	h, _ := newAuthHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", domain.Identity{ID: "a-1", Email: "admin@burningbushdesign.com", Role: domain.RoleSuperAdmin})

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":"a-1"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}
