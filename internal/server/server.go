package server

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdouchement/topbrands/internal/database"
	"github.com/mdouchement/topbrands/internal/server/middlewares"
	"github.com/sirupsen/logrus"
)

// An IOC is an Inversion Of Control pattern used to init the server package.
type IOC struct {
	Version  string
	Database database.Client
	Logger   logrus.FieldLogger
}

// EchoEngine instantiates the catalog web server.
func EchoEngine(ctrl IOC) *echo.Echo {
	engine := echo.New()
	middlewares.Defaults(engine, ctrl.Logger)

	engine.Pre(middleware.Rewrite(map[string]string{
		"/": "/version",
	}))

	////////////
	// Router //
	////////////

	router := engine.Group("")

	// generic handlers
	//
	router.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})

	//
	// item handlers
	//
	item := &item{
		db: ctrl.Database,
	}
	router.GET("/items", item.List)
	router.POST("/items", item.Create)
	router.GET("/items/:id", item.Show)
	router.PUT("/items/:id", item.Update)
	router.DELETE("/items/:id", item.Delete)

	return engine
}

// PrintRoutes prints the Echo engine exposed routes.
func PrintRoutes(e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	fmt.Println("Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Printf("%6s %s\n", route.Method, route.Path)
	}
}
