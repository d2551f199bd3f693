package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/burningbushdesign/storefront-api/internal/api/metrics"
	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
	"github.com/burningbushdesign/storefront-api/pkg/sessiontoken"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "admin-token"

const identityKey = "identity"

// TrustMode selects how far the session gate trusts a valid token.
type TrustMode string

const (
	// TrustToken accepts any authentic, unexpired token without touching
	// the account store. A deactivated account keeps working until its
	// token expires (up to the full 24h TTL).
	TrustToken TrustMode = "token-only"

	// TrustRevalidate re-loads the account on every request and rejects
	// tokens whose account has been removed or deactivated. Revocation is
	// immediate at the cost of one store read per request.
	TrustRevalidate TrustMode = "revalidate-each-request"
)

// ParseTrustMode validates a configured trust mode string.
func ParseTrustMode(s string) (TrustMode, error) {
	switch TrustMode(s) {
	case TrustToken, TrustRevalidate:
		return TrustMode(s), nil
	}
	return "", errors.New("trust mode must be \"token-only\" or \"revalidate-each-request\"")
}

// SessionPolicy configures the session gate.
type SessionPolicy struct {
	TrustMode TrustMode
	// SecureCookies marks cleared cookies Secure; enable in production.
	SecureCookies bool
}

// Session authenticates requests from the session cookie. A missing cookie
// is rejected 401; a token that fails verification is rejected 401 and the
// client's cookie is cleared so a poisoned token is not retried. The client
// is never told why a token failed; the distinct reason is only logged.
// On success the resolved identity is attached to the request context.
func Session(codec *sessiontoken.Codec, admins ports.AdminRepository, policy SessionPolicy, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				metrics.SessionRejectionsTotal.WithLabelValues("missing_cookie").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				log.Debug().Err(err).Str("path", c.Path()).Msg("session token rejected")
				metrics.SessionRejectionsTotal.WithLabelValues("invalid_token").Inc()
				ClearSessionCookie(c, policy.SecureCookies)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			role, err := domain.ParseRole(claims.Role)
			if err != nil {
				log.Debug().Str("role", claims.Role).Msg("session token carries unknown role")
				metrics.SessionRejectionsTotal.WithLabelValues("invalid_token").Inc()
				ClearSessionCookie(c, policy.SecureCookies)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			identity := domain.Identity{
				ID:       claims.ID,
				Email:    claims.Email,
				Username: claims.Username,
				Name:     claims.Name,
				Role:     role,
			}

			if policy.TrustMode == TrustRevalidate {
				user, err := admins.FindByID(c.Request().Context(), claims.ID)
				if err != nil {
					if errors.Is(err, domain.ErrAdminNotFound) {
						metrics.SessionRejectionsTotal.WithLabelValues("revoked").Inc()
						ClearSessionCookie(c, policy.SecureCookies)
						return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
					}
					return err // store failure -> 500 via the error handler
				}
				if !user.IsActive {
					metrics.SessionRejectionsTotal.WithLabelValues("revoked").Inc()
					ClearSessionCookie(c, policy.SecureCookies)
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
				}
				// Prefer the store's view of the account over the token's
				// snapshot; a renamed or re-roled admin takes effect now.
				identity = user.Identity()
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// IdentityFromContext returns the identity attached by Session.
func IdentityFromContext(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

// SetSessionCookie attaches a freshly issued session token to the response.
// HttpOnly and SameSite=Lax always; Secure per policy.
func SetSessionCookie(c echo.Context, token string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie instructs the client to drop its session cookie.
func ClearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
