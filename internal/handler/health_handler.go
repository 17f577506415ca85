package handler

import (
	"net/http"

	"brackk/internal/docstore"

	"github.com/labstack/echo/v4"
)

// / と /test（診断用）
type HealthHandler struct {
	store docstore.Store
}

// DI
func NewHealthHandler(store docstore.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.root)
	e.GET("/test", h.test)
}

func (h *HealthHandler) root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "brackk api",
	})
}

func (h *HealthHandler) test(c echo.Context) error {
	info := map[string]any{
		"backend": "running",
	}

	collections, err := h.store.Collections(c.Request().Context())
	if err != nil {
		info["database"] = "error"
		return c.JSON(http.StatusOK, info)
	}

	info["database"] = "connected"
	info["collections"] = collections
	return c.JSON(http.StatusOK, info)
}
