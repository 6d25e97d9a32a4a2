package store

import (
	"context"
	"fmt"

	"worklog/internal/database"
	"worklog/internal/model"

	"github.com/jackc/pgx/v5"
)

func ListTransactions(ctx context.Context, db database.DB) ([]model.Transaction, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_name, client_name, UPPER(client_country), amount, payment_type,
		        transaction_date, note, created_at, updated_at
		 FROM transactions
		 ORDER BY transaction_date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTransactions: %w", err)
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.UserName, &t.ClientName, &t.ClientCountry, &t.Amount,
			&t.PaymentType, &t.TransactionDate, &t.Note, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListTransactions: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTransactions: %w", err)
	}
	return txs, nil
}

func GetTransactionByID(ctx context.Context, db database.DB, txID int) (*model.Transaction, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_name, client_name, UPPER(client_country), amount, payment_type,
		        transaction_date, note, created_at, updated_at
		 FROM transactions WHERE id = $1`,
		txID,
	)
	t := &model.Transaction{}
	if err := row.Scan(&t.ID, &t.UserName, &t.ClientName, &t.ClientCountry, &t.Amount,
		&t.PaymentType, &t.TransactionDate, &t.Note, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("GetTransactionByID: %w", err)
	}
	return t, nil
}

// CreateTransaction inserts a transaction, upper-casing the client
// country at write time.
func CreateTransaction(ctx context.Context, db database.DB, t *model.Transaction) (*model.Transaction, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO transactions (user_name, client_name, client_country, amount, payment_type, transaction_date, note)
		 VALUES ($1, $2, UPPER($3), $4, $5, $6, $7)
		 RETURNING id, UPPER(client_country), created_at, updated_at`,
		t.UserName,
		t.ClientName,
		t.ClientCountry,
		t.Amount,
		t.PaymentType,
		t.TransactionDate,
		t.Note,
	)
	if err := row.Scan(&t.ID, &t.ClientCountry, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateTransaction: %w", err)
	}
	return t, nil
}

func UpdateTransaction(ctx context.Context, db database.DB, t *model.Transaction) error {
	tag, err := db.Exec(ctx,
		`UPDATE transactions
		 SET user_name = $1,
		     client_name = $2,
		     client_country = UPPER($3),
		     amount = $4,
		     payment_type = $5,
		     transaction_date = $6,
		     note = $7,
		     updated_at = now()
		 WHERE id = $8`,
		t.UserName,
		t.ClientName,
		t.ClientCountry,
		t.Amount,
		t.PaymentType,
		t.TransactionDate,
		t.Note,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateTransaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateTransaction: %w", pgx.ErrNoRows)
	}
	return nil
}

func DeleteTransaction(ctx context.Context, db database.DB, txID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM transactions WHERE id = $1`,
		txID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTransaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteTransaction: %w", pgx.ErrNoRows)
	}
	return nil
}

// MonthlyEarnings groups the month's transactions per user name. The
// left join against users resolves the commission target; an unmatched
// name (renamed or deleted user) keeps the legacy fallback of target 0.
func MonthlyEarnings(ctx context.Context, db database.DB, year, month int) ([]model.EarningsGroup, error) {
	rows, err := db.Query(ctx,
		`SELECT t.user_name, SUM(t.amount) AS amount, COUNT(*), COALESCE(MAX(u.target_money), 0)
		 FROM transactions t
		 LEFT JOIN users u ON u.name = t.user_name
		 WHERE EXTRACT(YEAR FROM t.created_at) = $1
		   AND EXTRACT(MONTH FROM t.created_at) = $2
		 GROUP BY t.user_name
		 ORDER BY amount DESC`,
		year,
		month,
	)
	if err != nil {
		return nil, fmt.Errorf("MonthlyEarnings: %w", err)
	}
	defer rows.Close()

	var groups []model.EarningsGroup
	for rows.Next() {
		var g model.EarningsGroup
		if err := rows.Scan(&g.UserName, &g.Amount, &g.Count, &g.Target); err != nil {
			return nil, fmt.Errorf("MonthlyEarnings: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("MonthlyEarnings: %w", err)
	}
	return groups, nil
}

// SumMonthEarnings totals the month's transaction amounts.
func SumMonthEarnings(ctx context.Context, db database.DB, year, month int) (float64, error) {
	row := db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM transactions
		 WHERE EXTRACT(YEAR FROM created_at) = $1
		   AND EXTRACT(MONTH FROM created_at) = $2`,
		year,
		month,
	)
	var total float64
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("SumMonthEarnings: %w", err)
	}
	return total, nil
}

// TopEarnerOfMonth returns the user name with the largest monthly
// amount. IsNotFound is true when the month has no transactions.
func TopEarnerOfMonth(ctx context.Context, db database.DB, year, month int) (string, error) {
	row := db.QueryRow(ctx,
		`SELECT user_name
		 FROM transactions
		 WHERE EXTRACT(YEAR FROM created_at) = $1
		   AND EXTRACT(MONTH FROM created_at) = $2
		 GROUP BY user_name
		 ORDER BY SUM(amount) DESC, user_name
		 LIMIT 1`,
		year,
		month,
	)
	var name string
	if err := row.Scan(&name); err != nil {
		return "", fmt.Errorf("TopEarnerOfMonth: %w", err)
	}
	return name, nil
}
