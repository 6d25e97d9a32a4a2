// File: internal/handler/dashboard/dashboard.go
package dashboard

import (
	"math"
	"net/http"
	"time"

	"worklog/internal/api"
	"worklog/internal/database"
	"worklog/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	userStats      = store.UserStats
	getTargetTimes = store.GetTargetTimes
	sumMonthHours  = store.SumMonthHours
	topUserByHours = store.TopUserByHours
	timeNow        = time.Now
)

// monthCapacity sums one user's target hours over the month: the
// weekend target on Sundays, nothing on Saturdays, the weekday target
// otherwise.
func monthCapacity(year int, month time.Month, weekday, weekend float64) float64 {
	var total float64
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Sunday:
			total += weekend
		case time.Saturday:
		default:
			total += weekday
		}
	}
	return total
}

// @Summary     Dashboard summary
// @Description Hours-based progress for the current month against the target-hour capacity
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} api.DashboardSummaryResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /dashboard/stats [get]
func StatsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		now := timeNow()
		year, month := now.Year(), now.Month()

		count, plan, err := userStats(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		targets, err := getTargetTimes(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		hours, err := sumMonthHours(c.Request().Context(), db, year, int(month))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		topUser, _, err := topUserByHours(c.Request().Context(), db, year, int(month))
		if err != nil {
			if !store.IsNotFound(err) {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
			}
			topUser = "N/A"
		}

		// The targets are team-level figures, so the month capacity is
		// not scaled by headcount.
		progress := 0
		capacity := monthCapacity(year, month, targets.WeekdayTarget, targets.WeekendTarget)
		if capacity > 0 {
			progress = int(math.Round(hours / capacity * 100))
		}

		return c.JSON(http.StatusOK, api.DashboardSummaryResponse{
			TotalUsers:      count,
			MonthlyPlan:     plan,
			MonthlyProgress: progress,
			TopUser:         topUser,
		})
	}
}
