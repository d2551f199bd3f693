package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/burningbushdesign/storefront-api/internal/api/metrics"
	"github.com/burningbushdesign/storefront-api/internal/api/middleware"
	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// AuthHandler handles login, logout, and the current-session probe. The
// session token travels in an HttpOnly cookie, never in the response body.
type AuthHandler struct {
	service       ports.AuthService
	tokenTTL      time.Duration
	secureCookies bool
}

func NewAuthHandler(service ports.AuthService, tokenTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: service, tokenTTL: tokenTTL, secureCookies: secureCookies}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User domain.Identity `json:"user"`
}

// Login authenticates an admin and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, identity, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	middleware.SetSessionCookie(c, token, h.tokenTTL, h.secureCookies)
	return c.JSON(http.StatusOK, loginResponse{User: identity})
}

// Logout clears the session cookie. It succeeds whether or not a valid
// session was presented.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	middleware.ClearSessionCookie(c, h.secureCookies)
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the identity behind the current session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  loginResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return c.JSON(http.StatusOK, loginResponse{User: identity})
}
