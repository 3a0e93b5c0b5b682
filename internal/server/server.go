package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func Start(addr string, cfg config.Config, orderH *handler.OrderHandler, itemH *handler.ItemHandler) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	orderH.RegisterRoutes(e, cfg)
	itemH.RegisterRoutes(e)

	return e.Start(addr)
}
