// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"worklog/internal/cache"
	"worklog/internal/database"
	"worklog/internal/handler"
	"worklog/internal/handler/auth"
	"worklog/internal/handler/dashboard"
	"worklog/internal/handler/reports"
	"worklog/internal/handler/targettimes"
	"worklog/internal/handler/transactions"
	"worklog/internal/handler/users"
	"worklog/internal/middleware"
	"worklog/internal/worker"
)

// Setup registers every route and its access guard.
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	api.GET("/health", handler.HealthHandler(db, cch))

	api.POST("/auth/login", auth.LoginHandler(db))
	api.GET("/auth/me", auth.MeHandler(db), middleware.RequireAuth)
	api.POST("/auth/logout", auth.LogoutHandler(), middleware.RequireAuth)

	apiUsers := api.Group("/users", middleware.RequireAdmin)
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.PUT("/:user_id", users.UpdateUserHandler(db))
	apiUsers.DELETE("/:user_id", users.DeleteUserHandler(db))

	apiReports := api.Group("/reports", middleware.RequireAuth)
	// static route first so "weekly" never matches :user_id
	apiReports.GET("/weekly", reports.WeeklyReportHandler(db))
	apiReports.GET("/:user_id", reports.ListUserReportsHandler(db))
	apiReports.POST("", reports.CreateReportHandler(db))
	apiReports.PUT("/:id", reports.UpdateReportHandler(db))
	apiReports.DELETE("/:id", reports.DeleteReportHandler(db))

	api.GET("/target-times", targettimes.GetTargetTimesHandler(db), middleware.RequireAuth)
	api.PUT("/target-times", targettimes.UpdateTargetTimesHandler(db), middleware.RequireAdmin)

	apiTx := api.Group("/transactions", middleware.RequireAuth)
	apiTx.GET("", transactions.ListTransactionsHandler(db))
	apiTx.GET("/users", transactions.TransactionUsersHandler(db))
	apiTx.GET("/monthly/:year/:month", transactions.MonthlyEarningsHandler(db))
	apiTx.GET("/dashboard-stats/:year/:month", transactions.DashboardStatsHandler(db, cch))
	apiTx.GET("/:id", transactions.GetTransactionHandler(db))
	apiTx.POST("", transactions.CreateTransactionHandler(db, cch, wp), middleware.RequireAdmin)
	apiTx.PUT("/:id", transactions.UpdateTransactionHandler(db, cch, wp), middleware.RequireAdmin)
	apiTx.DELETE("/:id", transactions.DeleteTransactionHandler(db, cch, wp), middleware.RequireAdmin)

	api.GET("/dashboard/stats", dashboard.StatsHandler(db), middleware.RequireAuth)
}
