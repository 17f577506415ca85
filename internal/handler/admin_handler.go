package handler

import (
	"net/http"

	"brackk/internal/config"
	"brackk/internal/middleware"
	repo "brackk/internal/repository"
	"brackk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /adminのHTTP（全ルートがauth+admin guard）
type AdminHandler struct {
	uc *usecase.AdminUsecase
}

// DI
func NewAdminHandler(uc *usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	IsAdmin  *bool   `json:"is_admin"`
	IsActive *bool   `json:"is_active"`
}

type setCreditRequest struct {
	CreditLimit *float64 `json:"credit_limit"`
	CreditUsed  *float64 `json:"credit_used"`
	BillingDay  *int     `json:"billing_day"`
}

type updateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"in_stock"`
}

type importUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Address      string `json:"address"`
	IsActive     *bool  `json:"is_active"`
	IsAdmin      bool   `json:"is_admin"`
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repo.UserRepository) {
	g := e.Group("/admin")
	g.Use(middleware.AuthJWT(cfg, userRepo))
	g.Use(middleware.AdminGuard())

	g.GET("/users", h.listUsers)
	g.PATCH("/users/:id", h.updateUser)
	g.PUT("/users/:id/credit", h.setCredit)
	g.POST("/users/import", h.importUser)

	g.GET("/products", h.listProducts)
	g.PATCH("/products/:id", h.updateProduct)
	g.DELETE("/products/:id", h.deleteProduct)
}

func (h *AdminHandler) listProducts(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"products": out})
}

func (h *AdminHandler) updateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), usecase.UpdateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		InStock:     req.InStock,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"product": out})
}

func (h *AdminHandler) deleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *AdminHandler) listUsers(c echo.Context) error {
	out, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"users": out})
}

func (h *AdminHandler) updateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateUser(c.Request().Context(), c.Param("id"), usecase.UpdateUserInput{
		Name:     req.Name,
		IsAdmin:  req.IsAdmin,
		IsActive: req.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"user": out})
}

func (h *AdminHandler) setCredit(c echo.Context) error {
	var req setCreditRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SetCredit(c.Request().Context(), c.Param("id"), usecase.SetCreditInput{
		CreditLimit: req.CreditLimit,
		CreditUsed:  req.CreditUsed,
		BillingDay:  req.BillingDay,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"credit": out})
}

func (h *AdminHandler) importUser(c echo.Context) error {
	var req importUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	out, err := h.uc.ImportUser(c.Request().Context(), usecase.ImportUserInput{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		Address:      req.Address,
		IsActive:     isActive,
		IsAdmin:      req.IsAdmin,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
