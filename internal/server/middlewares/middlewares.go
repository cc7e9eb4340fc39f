// Package middlewares contains the echo middlewares shared by the catalog and edge engines.
package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// Defaults registers the common middleware stack on the given engine.
func Defaults(engine *echo.Echo, log logrus.FieldLogger) {
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	engine.Use(middleware.Gzip())

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
	}))
	engine.Binder = NewBinder()
	// Error handler
	engine.HTTPErrorHandler = HTTPErrorHandler(log)
}
