package service

import (
	"testing"
	"time"

	"worklog/internal/model"

	"github.com/stretchr/testify/require"
)

func TestWeekBounds(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	// Every day of the week of Monday 2025-06-02 maps to the same window.
	for d := 2; d <= 8; d++ {
		start, end := WeekBounds(day(2025, time.June, d))
		require.Equal(t, day(2025, time.June, 2), start, "day %d", d)
		require.Equal(t, day(2025, time.June, 8), end, "day %d", d)
	}

	// A Sunday closes the week that began six days earlier.
	start, _ := WeekBounds(day(2025, time.June, 8))
	require.Equal(t, day(2025, time.June, 2), start)

	// Time-of-day is stripped from the bounds.
	start, end := WeekBounds(time.Date(2025, time.June, 4, 17, 30, 0, 0, time.UTC))
	require.Equal(t, day(2025, time.June, 2), start)
	require.Equal(t, day(2025, time.June, 8), end)
}

func TestBuildWeeklySummary(t *testing.T) {
	users := []model.User{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
		{ID: 3, Name: "Carol"},
	}
	reports := []model.Report{
		{UserID: 2, ReportDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), WorkingHours: 8},  // Mon
		{UserID: 2, ReportDate: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), WorkingHours: 4},  // Sat
		{UserID: 1, ReportDate: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), WorkingHours: 10}, // Tue
		{UserID: 99, ReportDate: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), WorkingHours: 5}, // unknown user
	}

	weeks := BuildWeeklySummary(users, reports)
	require.Len(t, weeks, 3)

	// ordered by total desc, then name asc
	require.Equal(t, "Bob", weeks[0].UserName)
	require.Equal(t, float64(12), weeks[0].Total)
	require.Equal(t, "Alice", weeks[1].UserName)
	require.Equal(t, "Carol", weeks[2].UserName)
	require.Equal(t, float64(0), weeks[2].Total)

	// day slots: filled where reported, nil elsewhere
	require.NotNil(t, weeks[0].Days["Mon"])
	require.Equal(t, float64(8), *weeks[0].Days["Mon"])
	require.NotNil(t, weeks[0].Days["Sat"])
	require.Nil(t, weeks[0].Days["Sun"])
	for _, d := range WeekDays {
		require.Nil(t, weeks[2].Days[d])
	}
}
