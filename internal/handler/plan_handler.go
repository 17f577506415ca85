package handler

import (
	"net/http"

	"brackk/internal/config"
	"brackk/internal/middleware"
	repo "brackk/internal/repository"
	"brackk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /plansのHTTP
type PlanHandler struct {
	uc *usecase.PlanUsecase
}

// DI
func NewPlanHandler(uc *usecase.PlanUsecase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

type createPlanRequest struct {
	Name          string   `json:"name"`
	PricePerMonth float64  `json:"price_per_month"`
	Features      []string `json:"features"`
	IsActive      *bool    `json:"is_active"`
}

func (h *PlanHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repo.UserRepository) {
	e.GET("/plans", h.list)
	e.POST("/plans", h.create,
		middleware.AuthJWT(cfg, userRepo),
		middleware.AdminGuard(),
	)
}

func (h *PlanHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *PlanHandler) create(c echo.Context) error {
	var req createPlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	id, err := h.uc.AdminCreate(c.Request().Context(), usecase.CreatePlanInput{
		Name:          req.Name,
		PricePerMonth: req.PricePerMonth,
		Features:      req.Features,
		IsActive:      isActive,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"id": id})
}
