// File: internal/handler/transactions/transaction.go
package transactions

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"worklog/internal/api"
	"worklog/internal/cache"
	"worklog/internal/database"
	"worklog/internal/model"
	"worklog/internal/store"
	"worklog/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	listTransactions   = store.ListTransactions
	getTransactionByID = store.GetTransactionByID
	createTransaction  = store.CreateTransaction
	updateTransaction  = store.UpdateTransaction
	deleteTransaction  = store.DeleteTransaction
	monthlyEarnings    = store.MonthlyEarnings
	sumMonthEarnings   = store.SumMonthEarnings
	topEarnerOfMonth   = store.TopEarnerOfMonth
	listNonAdminUsers  = store.ListNonAdminUsers
	userStats          = store.UserStats
)

const statsTTL = 5 * time.Minute

func statsKey(year, month int) string {
	return fmt.Sprintf("dashboard:stats:%d-%02d", year, month)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func parseYearMonth(c echo.Context) (int, int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year")
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month")
	}
	return year, month, nil
}

func toResponse(t model.Transaction) api.TransactionResponse {
	return api.TransactionResponse{
		ID:              t.ID,
		UserName:        t.UserName,
		ClientName:      t.ClientName,
		ClientCountry:   t.ClientCountry,
		Amount:          t.Amount,
		PaymentType:     t.PaymentType,
		TransactionDate: t.TransactionDate,
		Note:            t.Note,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// invalidateStats drops the cached dashboard figures for the month the
// transaction was recorded in. Runs on the pool so the request does not
// wait on redis.
func invalidateStats(wp worker.Pool, cch cache.Cache, at time.Time) {
	key := statsKey(at.Year(), int(at.Month()))
	wp.Submit(func() {
		cch.Del(context.Background(), key)
	})
}

// @Summary     List transactions
// @Tags        transactions
// @Produce     json
// @Success     200 {array} api.TransactionResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /transactions [get]
func ListTransactionsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		txs, err := listTransactions(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		resp := make([]api.TransactionResponse, 0, len(txs))
		for _, t := range txs {
			resp = append(resp, toResponse(t))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path int true "transaction ID"
// @Success     200 {object} api.TransactionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /transactions/{id} [get]
func GetTransactionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid transaction ID"})
		}
		tx, err := getTransactionByID(c.Request().Context(), db, id)
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "transaction not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		return c.JSON(http.StatusOK, toResponse(*tx))
	}
}

// @Summary     Create a transaction
// @Description Client country is stored upper-cased; payment type must belong to the catalog
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body api.TransactionRequest true "transaction"
// @Success     201 {object} api.TransactionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /transactions [post]
func CreateTransactionHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.TransactionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if !model.ValidPaymentType(req.PaymentType) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid payment type"})
		}

		tx, err := createTransaction(c.Request().Context(), db, &model.Transaction{
			UserName:        req.UserName,
			ClientName:      req.ClientName,
			ClientCountry:   req.ClientCountry,
			Amount:          req.Amount,
			PaymentType:     req.PaymentType,
			TransactionDate: req.Date,
			Note:            req.Note,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		invalidateStats(wp, cch, tx.CreatedAt)
		return c.JSON(http.StatusCreated, toResponse(*tx))
	}
}

// @Summary     Update a transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path int true "transaction ID"
// @Param       request body api.TransactionRequest true "updated fields"
// @Success     200 {object} api.TransactionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /transactions/{id} [put]
func UpdateTransactionHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid transaction ID"})
		}

		var req api.TransactionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if !model.ValidPaymentType(req.PaymentType) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid payment type"})
		}

		existing, err := getTransactionByID(c.Request().Context(), db, id)
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "transaction not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		if err := updateTransaction(c.Request().Context(), db, &model.Transaction{
			ID:              id,
			UserName:        req.UserName,
			ClientName:      req.ClientName,
			ClientCountry:   req.ClientCountry,
			Amount:          req.Amount,
			PaymentType:     req.PaymentType,
			TransactionDate: req.Date,
			Note:            req.Note,
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		updated, err := getTransactionByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		invalidateStats(wp, cch, existing.CreatedAt)
		return c.JSON(http.StatusOK, toResponse(*updated))
	}
}

// @Summary     Delete a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path int true "transaction ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /transactions/{id} [delete]
func DeleteTransactionHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid transaction ID"})
		}

		existing, err := getTransactionByID(c.Request().Context(), db, id)
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "transaction not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		if err := deleteTransaction(c.Request().Context(), db, id); err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "transaction not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		invalidateStats(wp, cch, existing.CreatedAt)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "transaction deleted successfully"})
	}
}

// @Summary     List users available for transactions
// @Description Non-admin accounts, used to attach a user name to a transaction
// @Tags        transactions
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /transactions/users [get]
func TransactionUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listNonAdminUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, api.UserResponse{
				ID:          u.ID,
				Name:        u.Name,
				Email:       u.Email,
				Role:        u.Role,
				TargetMoney: u.TargetMoney,
				CreatedAt:   u.CreatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Monthly earnings per user
// @Description Groups the month's transactions by user name and compares sums with targets
// @Tags        transactions
// @Produce     json
// @Param       year  path int true "year"
// @Param       month path int true "month (1-12)"
// @Success     200 {object} api.MonthlyEarningsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /transactions/monthly/{year}/{month} [get]
func MonthlyEarningsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		year, month, err := parseYearMonth(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		groups, err := monthlyEarnings(c.Request().Context(), db, year, month)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		resp := api.MonthlyEarningsResponse{
			Year:     year,
			Month:    month,
			Earnings: make([]api.UserEarnings, 0, len(groups)),
		}
		for _, g := range groups {
			progress := "0.0"
			if g.Target > 0 {
				progress = strconv.FormatFloat(round1(g.Amount/g.Target*100), 'f', 1, 64)
			}
			resp.Earnings = append(resp.Earnings, api.UserEarnings{
				UserName:         g.UserName,
				Amount:           g.Amount,
				Target:           g.Target,
				Progress:         progress,
				TransactionCount: g.Count,
			})
			resp.TotalEarnings += g.Amount
			resp.TotalTarget += g.Target
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Dashboard statistics for a month
// @Description Headcount, commission plan, earnings progress and top performer; cached in redis
// @Tags        transactions
// @Produce     json
// @Param       year  path int true "year"
// @Param       month path int true "month (1-12)"
// @Success     200 {object} api.DashboardStatsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /transactions/dashboard-stats/{year}/{month} [get]
func DashboardStatsHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		year, month, err := parseYearMonth(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		key := statsKey(year, month)
		if raw, err := cch.Get(c.Request().Context(), key).Result(); err == nil {
			var cached api.DashboardStatsResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return c.JSON(http.StatusOK, cached)
			}
		}

		count, plan, err := userStats(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		earnings, err := sumMonthEarnings(c.Request().Context(), db, year, month)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		topUser, err := topEarnerOfMonth(c.Request().Context(), db, year, month)
		if err != nil {
			if !store.IsNotFound(err) {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
			}
			topUser = "N/A"
		}

		progress := 0.0
		if plan > 0 {
			progress = round1(earnings / plan * 100)
		}
		resp := api.DashboardStatsResponse{
			TotalUsers:      count,
			MonthlyPlan:     plan,
			TotalEarnings:   earnings,
			MonthlyProgress: progress,
			TopUser:         topUser,
		}

		if payload, err := json.Marshal(resp); err == nil {
			cch.Set(c.Request().Context(), key, payload, statsTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
