package api

import "time"

// swagger:model api.TargetTimesResponse
type TargetTimesResponse struct {
	WeekdayTarget float64   `json:"weekday_target" example:"16"`
	WeekendTarget float64   `json:"weekend_target" example:"8"`
	UpdatedBy     *int      `json:"updated_by"`
	UpdatedAt     time.Time `json:"updated_at"`
}
