// File: internal/handler/targettimes/target_times.go
package targettimes

import (
	"net/http"

	"worklog/internal/api"
	"worklog/internal/database"
	"worklog/internal/middleware"
	"worklog/internal/service"
	"worklog/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getTargetTimes    = store.GetTargetTimes
	updateTargetTimes = store.UpdateTargetTimes
)

// @Summary     Get the target working hours
// @Description Returns the single weekday/weekend target configuration row
// @Tags        target-times
// @Produce     json
// @Success     200 {object} api.TargetTimesResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /target-times [get]
func GetTargetTimesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		tt, err := getTargetTimes(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		return c.JSON(http.StatusOK, api.TargetTimesResponse{
			WeekdayTarget: tt.WeekdayTarget,
			WeekendTarget: tt.WeekendTarget,
			UpdatedBy:     tt.UpdatedBy,
			UpdatedAt:     tt.UpdatedAt,
		})
	}
}

// @Summary     Update the target working hours
// @Description Upserts the singleton configuration row and records who changed it
// @Tags        target-times
// @Accept      json
// @Produce     json
// @Param       request body api.TargetTimesRequest true "targets"
// @Success     200 {object} api.TargetTimesResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /target-times [put]
func UpdateTargetTimesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.TargetTimesRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		tt, err := updateTargetTimes(c.Request().Context(), db, req.WeekdayTarget, req.WeekendTarget, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		return c.JSON(http.StatusOK, api.TargetTimesResponse{
			WeekdayTarget: tt.WeekdayTarget,
			WeekendTarget: tt.WeekendTarget,
			UpdatedBy:     tt.UpdatedBy,
			UpdatedAt:     tt.UpdatedAt,
		})
	}
}
