package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
)

func runRBAC(identity *domain.Identity, allowed ...domain.Role) (*httptest.ResponseRecorder, bool, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(identityKey, *identity)
	}

	var reached bool
	h := RBAC(allowed...)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	err := h(c)
	return rec, reached, err
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	id := domain.Identity{ID: "a-1", Role: domain.RoleAdmin}
	_, reached, err := runRBAC(&id, domain.RoleAdmin, domain.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reached {
		t.Fatal("handler was not reached for an allowed role")
	}
}

func TestRBAC_ForbidsUnlistedRole(t *testing.T) {
	id := domain.Identity{ID: "s-1", Role: domain.RoleStaff}
	rec, reached, err := runRBAC(&id, domain.RoleAdmin, domain.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reached {
		t.Fatal("handler must not run for a forbidden role")
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "insufficient permissions") {
		t.Errorf("body = %q, want insufficient permissions message", rec.Body.String())
	}
}

func TestRBAC_MissingIdentityIsUnauthorized(t *testing.T) {
	_, reached, err := runRBAC(nil, domain.RoleAdmin)
	if reached {
		t.Fatal("handler must not run without an identity")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}
