package router

import (
	"net/http"
	"testing"

	"worklog/internal/cache"
	"worklog/internal/database"
	"worklog/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, worker.NewPool(1))

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/health",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/auth/me",
		http.MethodPost + " /api/auth/logout",
		http.MethodGet + " /api/users",
		http.MethodPost + " /api/users",
		http.MethodPut + " /api/users/:user_id",
		http.MethodDelete + " /api/users/:user_id",
		http.MethodGet + " /api/reports/weekly",
		http.MethodGet + " /api/reports/:user_id",
		http.MethodPost + " /api/reports",
		http.MethodPut + " /api/reports/:id",
		http.MethodDelete + " /api/reports/:id",
		http.MethodGet + " /api/target-times",
		http.MethodPut + " /api/target-times",
		http.MethodGet + " /api/transactions",
		http.MethodGet + " /api/transactions/users",
		http.MethodGet + " /api/transactions/monthly/:year/:month",
		http.MethodGet + " /api/transactions/dashboard-stats/:year/:month",
		http.MethodGet + " /api/transactions/:id",
		http.MethodPost + " /api/transactions",
		http.MethodPut + " /api/transactions/:id",
		http.MethodDelete + " /api/transactions/:id",
		http.MethodGet + " /api/dashboard/stats",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
