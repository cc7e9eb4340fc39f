package edge

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdouchement/topbrands/internal/server/middlewares"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// An IOC is an Inversion Of Control pattern used to init the edge server.
type IOC struct {
	Version  string
	Adapter  *Adapter
	Gatherer prometheus.Gatherer
	Logger   logrus.FieldLogger
}

// EchoEngine instantiates the edge web server.
func EchoEngine(ctrl IOC) *echo.Echo {
	engine := echo.New()
	middlewares.Defaults(engine, ctrl.Logger)

	engine.Pre(middleware.Rewrite(map[string]string{
		"/": "/version",
	}))

	router := engine.Group("")

	router.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})
	router.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(ctrl.Gatherer, promhttp.HandlerOpts{DisableCompression: true})))

	router.GET("/top-brands", func(c echo.Context) error {
		return c.JSON(http.StatusOK, ctrl.Adapter.GoodItems(c.Request().Context()))
	})

	return engine
}
