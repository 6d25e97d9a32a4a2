// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"worklog/internal/api"
	"worklog/internal/cache"
	"worklog/internal/database"

	"github.com/labstack/echo/v4"
)

// @Summary     Health check
// @Description Verifies database and cache connectivity
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := cch.Set(c.Request().Context(), "healthcheck", "ok", time.Minute).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
	}
}
