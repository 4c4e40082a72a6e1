package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/malkhatib/portfolio-api/internal/domain"
	"github.com/malkhatib/portfolio-api/internal/service"
	"github.com/malkhatib/portfolio-api/internal/util"
)

type PreviewRequestHandler struct {
	requests *service.PreviewRequestService
}

func RegisterPreviewRequests(e *echo.Echo, auth *service.AuthService, requests *service.PreviewRequestService) {
	handler := &PreviewRequestHandler{requests: requests}

	// Visitors submit leads; only the admin reads or manages them.
	e.POST("/api/view-requests", handler.create)

	guarded := e.Group("/api/view-requests", RequireSession(auth))
	guarded.GET("", handler.list)
	guarded.PUT("", handler.updateStatus)
	guarded.DELETE("", handler.delete)
}

func (h *PreviewRequestHandler) list(c echo.Context) error {
	requests, err := h.requests.List(c.Request().Context())
	if err != nil {
		return requestError(c, err, "Failed to fetch view requests")
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *PreviewRequestHandler) create(c echo.Context) error {
	var req PreviewRequestCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	created, err := h.requests.Create(c.Request().Context(), domain.PreviewRequest{
		ProjectID:    req.ProjectID,
		ProjectTitle: req.ProjectTitle,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      req.Message,
	})
	if err != nil {
		return requestError(c, err, "Failed to add view request")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *PreviewRequestHandler) updateStatus(c echo.Context) error {
	var req PreviewRequestStatusUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.ID <= 0 || req.Status == "" {
		return c.JSON(http.StatusBadRequest, util.Error("Missing required fields"))
	}

	updated, err := h.requests.UpdateStatus(c.Request().Context(), req.ID, domain.RequestStatus(req.Status))
	if err != nil {
		return requestError(c, err, "Failed to update view request")
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *PreviewRequestHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, util.Error("Request ID is required"))
	}

	if err := h.requests.Delete(c.Request().Context(), id); err != nil {
		return requestError(c, err, "Failed to delete view request")
	}
	return c.JSON(http.StatusOK, util.Data("message", "Request deleted successfully"))
}

func requestError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrRequestValidation):
		return c.JSON(http.StatusBadRequest, util.Error("Missing required fields"))
	case errors.Is(err, service.ErrRequestNotFound):
		return c.JSON(http.StatusNotFound, util.Error("Request not found"))
	case errors.Is(err, service.ErrStoreUnavailable):
		return c.JSON(http.StatusServiceUnavailable, util.Error("Database is not available"))
	}
	return c.JSON(http.StatusInternalServerError, util.Error(fallback))
}
