package api

// swagger:model api.CreateReportRequest
type CreateReportRequest struct {
	ReportDate   string  `json:"report_date" validate:"required" example:"2025-06-02"`
	WorkingHours float64 `json:"working_hours" validate:"required,gte=0,lte=24" example:"8.5"`
	Description  *string `json:"description" example:"client onboarding"`
}
