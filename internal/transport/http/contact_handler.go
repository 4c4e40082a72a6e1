package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/malkhatib/portfolio-api/internal/service"
	"github.com/malkhatib/portfolio-api/internal/util"
)

const (
	msgContactSent     = "تم إرسال الرسالة بنجاح"
	msgContactRequired = "جميع الحقول مطلوبة"
	msgContactError    = "حدث خطأ أثناء إرسال الرسالة"
)

func RegisterContact(e *echo.Echo, contact *service.ContactService) {
	e.POST("/api/contact", func(c echo.Context) error {
		var req ContactRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error(msgContactRequired))
		}

		err := contact.Submit(c.Request().Context(), service.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			if errors.Is(err, service.ErrContactValidation) {
				return c.JSON(http.StatusBadRequest, util.Error(msgContactRequired))
			}
			return c.JSON(http.StatusInternalServerError, util.Error(msgContactError))
		}
		return c.JSON(http.StatusOK, util.Data("message", msgContactSent))
	})
}
