package api

// swagger:model api.DashboardStatsResponse
type DashboardStatsResponse struct {
	TotalUsers      int     `json:"totalUsers" example:"12"`
	MonthlyPlan     float64 `json:"monthlyPlan" example:"36000"`
	TotalEarnings   float64 `json:"totalEarnings" example:"20400"`
	MonthlyProgress float64 `json:"monthlyProgress" example:"56.7"`
	TopUser         string  `json:"topUser" example:"Alice"`
}

// DashboardSummaryResponse is the legacy hours-based variant served at
// /api/dashboard/stats: progress compares logged hours with the month's
// target-hour capacity instead of earnings against plan.
// swagger:model api.DashboardSummaryResponse
type DashboardSummaryResponse struct {
	TotalUsers      int     `json:"totalUsers" example:"12"`
	MonthlyPlan     float64 `json:"monthlyPlan" example:"36000"`
	MonthlyProgress int     `json:"monthlyProgress" example:"63"`
	TopUser         string  `json:"topUser" example:"Alice"`
}
