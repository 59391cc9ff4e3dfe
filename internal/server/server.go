package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Handlers は起動時にDIされるハンドラ一式。
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
}

func Start(cfg config.Config, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLog())

	RegisterRoutes(e, cfg, h)

	addr := cfg.Port
	if addr == "" {
		addr = "8080"
	}
	if addr[0] != ':' {
		addr = ":" + addr
	}

	return e.Start(addr)
}
