package api

// swagger:model api.UpdateReportRequest
type UpdateReportRequest struct {
	WorkingHours float64 `json:"working_hours" validate:"required,gte=0,lte=24" example:"7.25"`
	Description  *string `json:"description" example:"maintenance window"`
}
