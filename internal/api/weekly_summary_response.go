package api

// WeeklyUserHours maps every weekday abbreviation (Mon..Sun) to the
// user's logged hours for that date, null when no report exists.
// swagger:model api.WeeklyUserHours
type WeeklyUserHours struct {
	UserID      int                 `json:"userId" example:"42"`
	UserName    string              `json:"userName" example:"Alice"`
	WeeklyHours map[string]*float64 `json:"weeklyHours"`
	TotalHours  float64             `json:"totalHours" example:"38.5"`
	TotalHHMM   string              `json:"totalFormatted" example:"38:30"`
}

// swagger:model api.WeeklySummaryResponse
type WeeklySummaryResponse struct {
	StartOfWeek string            `json:"startOfWeek" example:"2025-06-02"`
	EndOfWeek   string            `json:"endOfWeek" example:"2025-06-08"`
	Users       []WeeklyUserHours `json:"users"`
}
