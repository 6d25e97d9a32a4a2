package api

import "time"

// swagger:model api.TransactionRequest
type TransactionRequest struct {
	UserName      string    `json:"userName" validate:"required" example:"Alice"`
	ClientName    string    `json:"clientName" validate:"required" example:"Acme GmbH"`
	ClientCountry string    `json:"clientCountry" validate:"required" example:"Germany"`
	Amount        float64   `json:"amount" validate:"required,gt=0" example:"1250.50"`
	PaymentType   string    `json:"paymentType" validate:"required" example:"wire_transfer"`
	Date          time.Time `json:"date" validate:"required"`
	Note          *string   `json:"note" example:"upfront payment"`
}
