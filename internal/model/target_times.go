// File: internal/model/target_times.go
package model

import "time"

// TargetTimes is the singleton working-hour target configuration.
// Weekday and weekend targets are decimal hours.
type TargetTimes struct {
	WeekdayTarget float64   `db:"weekday_target" json:"weekday_target"`
	WeekendTarget float64   `db:"weekend_target" json:"weekend_target"`
	UpdatedBy     *int      `db:"updated_by" json:"updated_by"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
