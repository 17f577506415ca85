package handler

import (
	"net/http"

	"brackk/internal/config"
	"brackk/internal/middleware"
	repo "brackk/internal/repository"
	"brackk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /creditのHTTP
type CreditHandler struct {
	uc *usecase.CreditUsecase
}

// DI
func NewCreditHandler(uc *usecase.CreditUsecase) *CreditHandler {
	return &CreditHandler{uc: uc}
}

type requestIncreaseRequest struct {
	UserID         string  `json:"user_id"`
	CurrentLimit   float64 `json:"current_limit"`
	RequestedLimit float64 `json:"requested_limit"`
}

func (h *CreditHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repo.UserRepository) {
	g := e.Group("/credit")
	g.Use(middleware.AuthJWT(cfg, userRepo))

	g.GET("", h.get)
	g.POST("/request-increase", h.requestIncrease)
}

func (h *CreditHandler) get(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.Get(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CreditHandler) requestIncrease(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req requestIncreaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.RequestIncrease(c.Request().Context(), userID, usecase.RequestIncreaseInput{
		UserID:         req.UserID,
		CurrentLimit:   req.CurrentLimit,
		RequestedLimit: req.RequestedLimit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
