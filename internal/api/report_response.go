package api

import "time"

// swagger:model api.ReportResponse
type ReportResponse struct {
	ID           int       `json:"id" example:"7"`
	UserID       int       `json:"user_id" example:"42"`
	UserName     string    `json:"user_name,omitempty" example:"Alice"`
	ReportDate   string    `json:"report_date" example:"2025-06-02"`
	WorkingHours float64   `json:"working_hours" example:"8.5"`
	Description  *string   `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
