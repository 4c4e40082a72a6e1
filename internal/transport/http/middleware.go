package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/malkhatib/portfolio-api/internal/service"
	"github.com/malkhatib/portfolio-api/internal/util"
)

// SessionCookieName carries the raw session token. The name matches the
// original site so existing deployments keep their sessions across upgrades.
const SessionCookieName = "admin_session"

const contextTokenKey = "session_token"

// RequireSession gates admin-only endpoints on the session cookie. The same
// validator backs GET /api/auth/check; in degraded mode (no session store)
// both trust cookie presence alone.
func RequireSession(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := sessionToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
			}
			if !auth.Check(c.Request().Context(), token) {
				clearSessionCookie(c)
				return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
			}
			c.Set(contextTokenKey, token)
			return next(c)
		}
	}
}

func sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}

func setSessionCookie(c echo.Context, token string, ttl time.Duration, secure bool) {
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

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
