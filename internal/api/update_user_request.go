package api

// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name        string  `json:"name" validate:"required" example:"Alice"`
	Email       string  `json:"email" validate:"required,email" example:"alice@example.com"`
	Password    string  `json:"password" validate:"omitempty" example:"NewSecret123!"`
	Role        string  `json:"role" validate:"required,oneof=admin user" example:"user"`
	TargetMoney float64 `json:"target_money" validate:"gte=0" example:"3500"`
}
