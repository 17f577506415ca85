package server

import (
	"brackk/internal/config"
	"brackk/internal/handler"
	repo "brackk/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// ルート登録に必要なhandler一式。
type Handlers struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Credit  *handler.CreditHandler
	Plan    *handler.PlanHandler
	Admin   *handler.AdminHandler
}

// New はechoアプリを組み立てる。起動はしない。
func New(cfg config.Config, userRepo repo.UserRepository, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	RegisterRoutes(e, cfg, userRepo, h)
	return e
}
