package api

// UserEarnings is one user's monthly total against the commission
// target. Progress is formatted with one decimal place; a user name
// with no matching account reports target 0 and progress "0.0".
// swagger:model api.UserEarnings
type UserEarnings struct {
	UserName         string  `json:"userName" example:"Alice"`
	Amount           float64 `json:"amount" example:"1200"`
	Target           float64 `json:"target" example:"1000"`
	Progress         string  `json:"progress" example:"120.0"`
	TransactionCount int     `json:"transactionCount" example:"2"`
}

// swagger:model api.MonthlyEarningsResponse
type MonthlyEarningsResponse struct {
	Year          int            `json:"year" example:"2025"`
	Month         int            `json:"month" example:"6"`
	Earnings      []UserEarnings `json:"earnings"`
	TotalEarnings float64        `json:"totalEarnings" example:"4200"`
	TotalTarget   float64        `json:"totalTarget" example:"9000"`
}
