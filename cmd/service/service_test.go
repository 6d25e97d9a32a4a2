package main

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"worklog/internal/cache"
	"worklog/internal/database"
	"worklog/internal/service"
	"worklog/internal/worker"
)

func restoreGlobals() {
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	ensureAdminFn = service.EnsureDefaultAdmin
	newWorkerPool = worker.NewPool
	newLogger = zap.NewProduction
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
}

func setEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("REDIS_ADDR", "127")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("REDIS_PASSWORD", "pw")
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	ensureAdminFn = func(context.Context, database.DB) (bool, error) {
		called["admin"] = true
		return true, nil
	}
	newLogger = func(...zap.Option) (*zap.Logger, error) { return zap.NewNop(), nil }
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":8080", addr)
		return nil
	}

	setEnv(t)

	require.NoError(t, run())
	require.True(t, called["pgx"])
	require.True(t, called["redis"])
	require.True(t, called["migrate"])
	require.True(t, called["admin"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
}

func TestRunCustomPort(t *testing.T) {
	t.Cleanup(restoreGlobals)
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return nil }
	ensureAdminFn = func(context.Context, database.DB) (bool, error) { return false, nil }
	newLogger = func(...zap.Option) (*zap.Logger, error) { return zap.NewNop(), nil }
	var gotAddr string
	startServer = func(_ *echo.Echo, addr string) error { gotAddr = addr; return nil }

	setEnv(t)
	t.Setenv("PORT", "9001")
	t.Setenv("WORKER_COUNT", "3")

	require.NoError(t, run())
	require.Equal(t, ":9001", gotAddr)
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	newLogger = func(...zap.Option) (*zap.Logger, error) { return zap.NewNop(), nil }

	t.Setenv("DATABASE_URL", "")
	require.Error(t, run())
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("JWT_SECRET", "")
	require.Error(t, run())
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("REDIS_ADDR", "")
	require.Error(t, run())
	t.Setenv("REDIS_ADDR", "addr")
	t.Setenv("REDIS_DB", "")
	require.Error(t, run())

	t.Setenv("REDIS_DB", "bad")
	require.Error(t, run())
	t.Setenv("REDIS_DB", "0")
	t.Setenv("REDIS_PASSWORD", "")
	require.Error(t, run())

	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("WORKER_COUNT", "zero")
	require.Error(t, run())
	t.Setenv("WORKER_COUNT", "1")

	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run())

	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run())

	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run())

	runMigrationsFn = func(string) error { return nil }
	ensureAdminFn = func(context.Context, database.DB) (bool, error) {
		return false, errors.New("admin")
	}
	require.Error(t, run())

	ensureAdminFn = func(context.Context, database.DB) (bool, error) { return false, nil }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run())
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	newLogger = func(...zap.Option) (*zap.Logger, error) { return zap.NewNop(), nil }
	startServer = func(*echo.Echo, string) error { return nil }
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return nil }
	ensureAdminFn = func(context.Context, database.DB) (bool, error) { return false, nil }
	setEnv(t)
	main()
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	newLogger = func(...zap.Option) (*zap.Logger, error) { return zap.NewNop(), nil }
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("fail") }
	setEnv(t)
	main()
	require.Equal(t, 1, exitCode)
}
