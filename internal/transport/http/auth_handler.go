package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/malkhatib/portfolio-api/internal/service"
	"github.com/malkhatib/portfolio-api/internal/util"
)

// Arabic user-facing messages, kept verbatim from the original site.
const (
	msgInvalidCredentials = "اسم المستخدم أو كلمة المرور غير صحيحة"
	msgLoginError         = "حدث خطأ في تسجيل الدخول"
)

type AuthHandler struct {
	auth         *service.AuthService
	secureCookie bool
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService, secureCookie bool) {
	handler := &AuthHandler{auth: auth, secureCookie: secureCookie}

	e.POST("/api/auth/login", handler.login)
	e.GET("/api/auth/check", handler.check)
	e.POST("/api/auth/logout", handler.logout)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error(msgLoginError))
	}

	session, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, util.Error(msgInvalidCredentials))
		}
		return c.JSON(http.StatusInternalServerError, util.Error(msgLoginError))
	}

	setSessionCookie(c, session.Token, h.auth.SessionTTL(), h.secureCookie)
	return c.JSON(http.StatusOK, util.Data("success", true))
}

// check never fails: any problem resolves to authenticated=false and, when a
// cookie was presented, that stale cookie is cleared.
func (h *AuthHandler) check(c echo.Context) error {
	token := sessionToken(c)
	authenticated := h.auth.Check(c.Request().Context(), token)
	if !authenticated && token != "" {
		clearSessionCookie(c)
	}
	return c.JSON(http.StatusOK, util.Data("authenticated", authenticated))
}

func (h *AuthHandler) logout(c echo.Context) error {
	h.auth.Logout(c.Request().Context(), sessionToken(c))
	clearSessionCookie(c)
	return c.JSON(http.StatusOK, util.Data("success", true))
}
