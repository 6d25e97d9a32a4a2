// File: internal/database/db.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of pgxpool.Pool the store layer depends on. Keeping
// it narrow lets tests run against FakeDB instead of a live database.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

// FakeDB implements DB with per-method hooks. A method called without
// its hook set panics, so a test cannot silently hit an unstubbed path.
type FakeDB struct {
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	PingFn     func(ctx context.Context) error
	CloseFn    func()
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn == nil {
		panic("FakeDB: QueryRow hook not set")
	}
	return f.QueryRowFn(ctx, sql, args...)
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn == nil {
		panic("FakeDB: Query hook not set")
	}
	return f.QueryFn(ctx, sql, args...)
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn == nil {
		panic("FakeDB: Exec hook not set")
	}
	return f.ExecFn(ctx, sql, args...)
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		panic("FakeDB: Ping hook not set")
	}
	return f.PingFn(ctx)
}

// Close is a no-op unless a hook is set; most tests do not care about
// connection teardown.
func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
