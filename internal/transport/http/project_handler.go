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

type ProjectHandler struct {
	projects *service.ProjectService
}

func RegisterProjects(e *echo.Echo, auth *service.AuthService, projects *service.ProjectService) {
	handler := &ProjectHandler{projects: projects}

	// The public site reads the showcase; everything else is admin-only.
	e.GET("/api/projects", handler.list)

	guarded := e.Group("/api/projects", RequireSession(auth))
	guarded.POST("", handler.create)
	guarded.PUT("", handler.update)
	guarded.DELETE("", handler.delete)
	guarded.POST("/image", handler.uploadImage)
}

func (h *ProjectHandler) list(c echo.Context) error {
	projects, err := h.projects.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("Failed to fetch projects"))
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) create(c echo.Context) error {
	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	project, err := h.projects.Create(c.Request().Context(), projectFields(req))
	if err != nil {
		return projectError(c, err, "Failed to add project")
	}
	return c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) update(c echo.Context) error {
	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.ID <= 0 {
		return c.JSON(http.StatusBadRequest, util.Error("Missing required fields"))
	}

	project, err := h.projects.Update(c.Request().Context(), req.ID, projectFields(req))
	if err != nil {
		return projectError(c, err, "Failed to update project")
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, util.Error("Project ID is required"))
	}

	if err := h.projects.Delete(c.Request().Context(), id); err != nil {
		return projectError(c, err, "Failed to delete project")
	}
	return c.JSON(http.StatusOK, util.Data("message", "Project deleted successfully"))
}

func (h *ProjectHandler) uploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("image file is required"))
	}
	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("unable to read image"))
	}
	defer src.Close()

	url, err := h.projects.UploadImage(c.Request().Context(), service.ProjectImageUpload{
		Reader:      src,
		Size:        file.Size,
		FileName:    file.Filename,
		ContentType: file.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		return projectError(c, err, "Failed to upload image")
	}
	return c.JSON(http.StatusCreated, util.Data("url", url))
}

func projectFields(req ProjectRequest) domain.ProjectFields {
	return domain.ProjectFields{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		SubImages:    req.SubImages,
		Technologies: req.Technologies,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		Category:     req.Category,
	}
}

func projectError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrProjectValidation):
		return c.JSON(http.StatusBadRequest, util.Error("Missing required fields"))
	case errors.Is(err, service.ErrProjectNotFound):
		return c.JSON(http.StatusNotFound, util.Error("Project not found"))
	case errors.Is(err, service.ErrStoreUnavailable):
		return c.JSON(http.StatusServiceUnavailable, util.Error("Database is not available"))
	case errors.Is(err, service.ErrStorageUnavailable):
		return c.JSON(http.StatusServiceUnavailable, util.Error("Object storage is not available"))
	}
	return c.JSON(http.StatusInternalServerError, util.Error(fallback))
}
