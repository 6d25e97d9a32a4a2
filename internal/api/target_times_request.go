package api

// swagger:model api.TargetTimesRequest
type TargetTimesRequest struct {
	WeekdayTarget float64 `json:"weekday_target" validate:"required,gt=0,lte=24" example:"16"`
	WeekendTarget float64 `json:"weekend_target" validate:"required,gt=0,lte=24" example:"8"`
}
