// File: internal/model/report.go
package model

import "time"

// Report is a single day's logged working time for one user.
// UserName is populated by queries that join the owning user.
type Report struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"user_id"`
	UserName     string    `db:"user_name" json:"user_name,omitempty"`
	ReportDate   time.Time `db:"report_date" json:"report_date"`
	WorkingHours float64   `db:"working_hours" json:"working_hours"`
	Description  *string   `db:"description" json:"description"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
