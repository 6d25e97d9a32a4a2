package api

import "time"

// swagger:model api.UserResponse
type UserResponse struct {
	ID          int       `json:"id" example:"42"`
	Name        string    `json:"name" example:"Alice"`
	Email       string    `json:"email" example:"alice@example.com"`
	Role        string    `json:"role" example:"user"`
	TargetMoney float64   `json:"target_money" example:"3000"`
	CreatedAt   time.Time `json:"created_at"`
}
