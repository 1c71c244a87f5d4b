package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/apperr"
)

type errorBody struct {
	Message string `json:"message"`
}

// ErrorHandler renders every error as {"message": ...}. Domain errors map to
// their status through apperr; echo errors keep their code. Anything else is
// logged and reported as a bare 500.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := resolve(err)
		if status >= http.StatusInternalServerError {
			rid, _ := c.Get("request_id").(string)
			logger.Error().
				Err(err).
				Str("request_id", rid).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, errorBody{Message: msg})
		}
		if werr != nil {
			logger.Warn().Err(werr).Msg("write error response")
		}
	}
}

func resolve(err error) (int, string) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return apperr.HTTPStatus(ae), ae.Error()
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			return he.Code, "internal server error"
		}
		if m, ok := he.Message.(string); ok {
			return he.Code, m
		}
		return he.Code, http.StatusText(he.Code)
	}

	return http.StatusInternalServerError, "internal server error"
}
