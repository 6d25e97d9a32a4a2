// File: internal/model/transaction.go
package model

import "time"

// Transaction links to a user by display name, not by id. The match
// against users.name is intentional legacy behavior: an unmatched name
// reports a zero commission target instead of failing.
type Transaction struct {
	ID              int       `db:"id" json:"id"`
	UserName        string    `db:"user_name" json:"user_name"`
	ClientName      string    `db:"client_name" json:"client_name"`
	ClientCountry   string    `db:"client_country" json:"client_country"`
	Amount          float64   `db:"amount" json:"amount"`
	PaymentType     string    `db:"payment_type" json:"payment_type"`
	TransactionDate time.Time `db:"transaction_date" json:"transaction_date"`
	Note            *string   `db:"note" json:"note"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// PaymentTypes is the fixed catalog of accepted payment-type codes.
var PaymentTypes = []string{
	"credit_card", "debit_card", "amex", "mastercard", "visa",
	"paypal", "google_pay", "apple_pay", "samsung_pay", "alipay", "wechat_pay", "venmo",
	"bank_transfer", "wire_transfer", "sepa", "ach",
	"bitcoin", "ethereum", "usdt", "usdc",
	"stripe", "klarna", "affirm", "wise",
	"cash", "check", "money_order",
}

// ValidPaymentType reports whether code belongs to the catalog.
func ValidPaymentType(code string) bool {
	for _, t := range PaymentTypes {
		if t == code {
			return true
		}
	}
	return false
}
