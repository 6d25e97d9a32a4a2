// File: internal/service/week.go
package service

import (
	"sort"
	"time"

	"worklog/internal/model"
)

// WeekDays are the day slots of a business week, Monday first.
var WeekDays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekBounds returns the Monday and Sunday dates of the calendar week
// containing ref. A Sunday reference belongs to the week that started
// six days earlier, since the business week runs Monday through Sunday.
func WeekBounds(ref time.Time) (time.Time, time.Time) {
	offset := int(ref.Weekday()) // Sunday == 0
	if offset == 0 {
		offset = 7
	}
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).
		AddDate(0, 0, -(offset - 1))
	return start, start.AddDate(0, 0, 6)
}

// UserWeek is one user's hours for a single week. Days maps every
// weekday abbreviation to the logged hours, nil when no report exists.
type UserWeek struct {
	UserID   int
	UserName string
	Days     map[string]*float64
	Total    float64
}

// BuildWeeklySummary assembles the weekly table from the non-admin
// user list and the reports already restricted to the week window.
// Every user appears even with zero reports. Output is ordered by
// total hours descending, ties broken by name ascending.
func BuildWeeklySummary(users []model.User, reports []model.Report) []UserWeek {
	byUser := make(map[int]*UserWeek, len(users))
	out := make([]UserWeek, 0, len(users))
	for _, u := range users {
		days := make(map[string]*float64, len(WeekDays))
		for _, d := range WeekDays {
			days[d] = nil
		}
		byUser[u.ID] = &UserWeek{UserID: u.ID, UserName: u.Name, Days: days}
	}

	for _, r := range reports {
		uw, ok := byUser[r.UserID]
		if !ok {
			continue
		}
		hours := r.WorkingHours
		uw.Days[r.ReportDate.Format("Mon")] = &hours
		uw.Total += hours
	}

	for _, u := range users {
		out = append(out, *byUser[u.ID])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].UserName < out[j].UserName
	})
	return out
}
