package api

import "time"

// swagger:model api.TransactionResponse
type TransactionResponse struct {
	ID              int       `json:"id" example:"11"`
	UserName        string    `json:"user_name" example:"Alice"`
	ClientName      string    `json:"client_name" example:"Acme GmbH"`
	ClientCountry   string    `json:"client_country" example:"GERMANY"`
	Amount          float64   `json:"amount" example:"1250.50"`
	PaymentType     string    `json:"payment_type" example:"wire_transfer"`
	TransactionDate time.Time `json:"transaction_date"`
	Note            *string   `json:"note"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
