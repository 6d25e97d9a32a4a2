// File: internal/middleware/logging.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger logs every request with its resolved status code.
// Server-side failures are logged at error level so the generic 500
// body returned to clients never hides the cause.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
			}
			if status >= http.StatusInternalServerError {
				fields = append(fields, zap.Error(err))
				logger.Error("request failed", fields...)
			} else {
				logger.Info("request", fields...)
			}
			return err
		}
	}
}
