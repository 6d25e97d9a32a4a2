package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"worklog/internal/database"
	"worklog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestReportStore(t *testing.T) {
	now := time.Now().UTC()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	note := "maintenance"

	t.Run("ListReportsByUser ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, []any{4}, args)
				return &fakeRows{data: [][]any{
					{1, 4, "Alice", day, 8.5, &note, now},
					{2, 4, "Alice", day.AddDate(0, 0, -1), 7.0, (*string)(nil), now},
				}}, nil
			},
		}
		reports, err := ListReportsByUser(context.Background(), db, 4)
		require.NoError(t, err)
		require.Len(t, reports, 2)
		require.Equal(t, "Alice", reports[0].UserName)
		require.Nil(t, reports[1].Description)
	})

	t.Run("GetReportByID not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetReportByID(context.Background(), db, 3)
		require.True(t, IsNotFound(err))
	})

	t.Run("CreateReport ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{values: []any{11, now}}
			},
		}
		r, err := CreateReport(context.Background(), db, &model.Report{UserID: 4, ReportDate: day, WorkingHours: 8})
		require.NoError(t, err)
		require.Equal(t, 11, r.ID)
	})

	t.Run("CreateReport duplicate date", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: "23505"}}
			},
		}
		_, err := CreateReport(context.Background(), db, &model.Report{})
		require.True(t, IsUniqueViolation(err))
	})

	t.Run("UpdateReport ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{5.5, &note, 11}, args)
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, UpdateReport(context.Background(), db, 11, 5.5, &note))
	})

	t.Run("DeleteReport err", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("boom")
			},
		}
		require.Error(t, DeleteReport(context.Background(), db, 11))
	})

	t.Run("ListReportsBetween ok", func(t *testing.T) {
		start := day
		end := day.AddDate(0, 0, 6)
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, []any{start, end}, args)
				return &fakeRows{data: [][]any{
					{1, 4, "Alice", day, 8.0, (*string)(nil), now},
				}}, nil
			},
		}
		reports, err := ListReportsBetween(context.Background(), db, start, end)
		require.NoError(t, err)
		require.Len(t, reports, 1)
	})

	t.Run("SumMonthHours ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Equal(t, []any{2025, 6}, args)
				// every report counts, no role filter
				require.NotContains(t, sql, "JOIN")
				return &fakeRow{values: []any{123.5}}
			},
		}
		total, err := SumMonthHours(context.Background(), db, 2025, 6)
		require.NoError(t, err)
		require.Equal(t, 123.5, total)
	})

	t.Run("TopUserByHours empty month", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, _, err := TopUserByHours(context.Background(), db, 2025, 6)
		require.True(t, IsNotFound(err))
	})

	t.Run("TopUserByHours ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{values: []any{"Alice", 160.0}}
			},
		}
		name, hours, err := TopUserByHours(context.Background(), db, 2025, 6)
		require.NoError(t, err)
		require.Equal(t, "Alice", name)
		require.Equal(t, 160.0, hours)
	})
}
