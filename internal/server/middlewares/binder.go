package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type binder struct {
	echo.DefaultBinder
	methodsWithBody map[string]bool
}

// NewBinder wraps the default binder implementation.
// Requests with a body must be non-empty JSON.
func NewBinder() echo.Binder {
	return &binder{
		methodsWithBody: map[string]bool{
			http.MethodPost:  true,
			http.MethodPatch: true,
			http.MethodPut:   true,
		},
	}
}

// Bind implements the echo.Bind interface.
func (b *binder) Bind(i interface{}, c echo.Context) (err error) {
	req := c.Request()
	if b.methodsWithBody[req.Method] {
		if req.ContentLength == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Request body can't be empty")
		}
		if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
			return echo.ErrUnsupportedMediaType
		}
	}
	return b.DefaultBinder.Bind(i, c)
}
