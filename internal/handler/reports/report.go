// File: internal/handler/reports/report.go
package reports

import (
	"net/http"
	"strconv"
	"time"

	"worklog/internal/api"
	"worklog/internal/database"
	"worklog/internal/middleware"
	"worklog/internal/model"
	"worklog/internal/service"
	"worklog/internal/store"
	"worklog/internal/timeformat"

	"github.com/labstack/echo/v4"
)

var (
	listReportsByUser  = store.ListReportsByUser
	getReportByID      = store.GetReportByID
	createReport       = store.CreateReport
	updateReport       = store.UpdateReport
	deleteReport       = store.DeleteReport
	listReportsBetween = store.ListReportsBetween
	listNonAdminUsers  = store.ListNonAdminUsers
)

const dateLayout = "2006-01-02"

func toResponse(r model.Report) api.ReportResponse {
	return api.ReportResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		UserName:     r.UserName,
		ReportDate:   r.ReportDate.Format(dateLayout),
		WorkingHours: r.WorkingHours,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt,
	}
}

func claimsFrom(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	return claims, ok
}

// @Summary     List a user's work reports
// @Description Callers may read their own reports; admins may read anyone's
// @Tags        reports
// @Produce     json
// @Param       user_id path int true "user ID"
// @Success     200 {array} api.ReportResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reports/{user_id} [get]
func ListUserReportsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		if claims.UserID != userID && !claims.IsAdmin() {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "access denied"})
		}

		reports, err := listReportsByUser(c.Request().Context(), db, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		resp := make([]api.ReportResponse, 0, len(reports))
		for _, r := range reports {
			resp = append(resp, toResponse(r))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a work report for the caller
// @Description One report per calendar date; hours must fall within 0 and 24
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       request body api.CreateReportRequest true "report"
// @Success     201 {object} api.ReportResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reports [post]
func CreateReportHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateReportRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		reportDate, err := time.Parse(dateLayout, req.ReportDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid report date"})
		}

		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		report, err := createReport(c.Request().Context(), db, &model.Report{
			UserID:       claims.UserID,
			ReportDate:   reportDate,
			WorkingHours: req.WorkingHours,
			Description:  req.Description,
		})
		if err != nil {
			if store.IsUniqueViolation(err) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "report already exists for this date"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		return c.JSON(http.StatusCreated, toResponse(*report))
	}
}

// @Summary     Update an own work report
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       id path int true "report ID"
// @Param       request body api.UpdateReportRequest true "updated fields"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reports/{id} [put]
func UpdateReportHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid report ID"})
		}

		var req api.UpdateReportRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		report, err := getReportByID(c.Request().Context(), db, id)
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "report not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		if report.UserID != claims.UserID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "access denied"})
		}

		if err := updateReport(c.Request().Context(), db, id, req.WorkingHours, req.Description); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "report updated successfully"})
	}
}

// @Summary     Delete an own work report
// @Tags        reports
// @Produce     json
// @Param       id path int true "report ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reports/{id} [delete]
func DeleteReportHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid report ID"})
		}

		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		report, err := getReportByID(c.Request().Context(), db, id)
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "report not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		if report.UserID != claims.UserID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "access denied"})
		}

		if err := deleteReport(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "report deleted successfully"})
	}
}

// @Summary     Weekly hours per user
// @Description Monday through Sunday table for all non-admin users; date picks the week
// @Tags        reports
// @Produce     json
// @Param       date query string false "any date inside the requested week (YYYY-MM-DD)"
// @Success     200 {object} api.WeeklySummaryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reports/weekly [get]
func WeeklyReportHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ref := time.Now()
		if raw := c.QueryParam("date"); raw != "" {
			parsed, err := time.Parse(dateLayout, raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid date"})
			}
			ref = parsed
		}

		start, end := service.WeekBounds(ref)

		users, err := listNonAdminUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		reports, err := listReportsBetween(c.Request().Context(), db, start, end)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		weeks := service.BuildWeeklySummary(users, reports)
		resp := api.WeeklySummaryResponse{
			StartOfWeek: start.Format(dateLayout),
			EndOfWeek:   end.Format(dateLayout),
			Users:       make([]api.WeeklyUserHours, 0, len(weeks)),
		}
		for _, w := range weeks {
			resp.Users = append(resp.Users, api.WeeklyUserHours{
				UserID:      w.UserID,
				UserName:    w.UserName,
				WeeklyHours: w.Days,
				TotalHours:  w.Total,
				TotalHHMM:   timeformat.ToHHMM(w.Total),
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
