package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/topbrands/internal/apierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// HTTPErrorHandler returns a middleware that formats rendered errors.
func HTTPErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var apierr *apierror.APIError
		var httperr *echo.HTTPError
		switch {
		case errors.As(err, &httperr):
			if httperr.Internal != nil {
				log.WithField("code", httperr.Code).Warnf("Error [ECHO]: %v", httperr.Internal)
			}
			_ = c.JSON(httperr.Code, echo.Map{
				"error": echo.Map{
					"message": httperr.Message,
				},
			})
		case errors.As(err, &apierr):
			status := apierror.StatusCode(apierr)
			if status < 500 {
				_ = c.JSON(status, apierr)
				return
			}

			internal(log, err, c)
		default:
			internal(log, err, c)
		}
	}
}

func internal(log logrus.FieldLogger, err error, c echo.Context) {
	id := uuid.Must(uuid.NewV4()).String()
	log.WithField("error_id", id).Errorf("Error [%s]: %s", id, err.Error())

	_ = c.JSON(http.StatusInternalServerError, echo.Map{
		"error": echo.Map{
			"message": fmt.Sprintf("Unexpected error (id: %s)", id),
		},
	})
}
