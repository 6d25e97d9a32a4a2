// File: internal/model/earnings.go
package model

// EarningsGroup is one user's aggregated transactions for a month.
type EarningsGroup struct {
	UserName string  `db:"user_name" json:"user_name"`
	Amount   float64 `db:"amount" json:"amount"`
	Target   float64 `db:"target" json:"target"`
	Count    int     `db:"count" json:"count"`
}
