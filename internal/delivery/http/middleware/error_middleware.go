package middleware

import (
	"log/slog"
	"net/http"

	"teslo/internal/delivery/http/response"
	domainerrors "teslo/internal/domain/errors"
	"teslo/internal/errors"

	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler maps errors escaping the handlers to the response
// envelope. Domain errors carry their own status and code; anything else is
// logged in full and reported as a generic internal failure so internal
// details never reach the client.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var writeErr error

		var appErr domainerrors.AppError

		var httpErr *echo.HTTPError

		switch {
		case errors.As(err, &appErr):
			writeErr = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
		case errors.As(err, &httpErr):
			msg, ok := httpErr.Message.(string)
			if !ok {
				msg = http.StatusText(httpErr.Code)
			}

			writeErr = response.Error(c, httpErr.Code, "HTTP_ERROR", msg, "")
		default:
			logger.Error("unhandled error",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Path()),
				slog.Any("error", err),
			)

			writeErr = response.Error(c, http.StatusInternalServerError,
				domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), "")
		}

		if writeErr != nil {
			logger.Error("failed to write error response", slog.Any("error", writeErr))
		}
	}
}
