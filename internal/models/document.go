package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is a row of the documents table.
type Document struct {
	DocumentID     string          `db:"document_id"`
	UserID         string          `db:"user_id"`
	DocumentType   string          `db:"document_type"`
	Status         string          `db:"status"`
	DocumentNumber string          `db:"document_number"`
	CustomerName   string          `db:"customer_name"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	CurrencyCode   string          `db:"currency_code"`
	IssueDate      *time.Time      `db:"issue_date"` // Nullable
	DueDate        *time.Time      `db:"due_date"`   // Nullable
	Timestamps
}

// DocumentAmount is the projection used by revenue queries.
type DocumentAmount struct {
	TotalAmount  decimal.Decimal `db:"total_amount"`
	CurrencyCode string          `db:"currency_code"`
	CreatedAt    time.Time       `db:"created_at"`
}

// CurrencyTotal is one row of a per-currency revenue sum.
type CurrencyTotal struct {
	CurrencyCode string          `db:"currency_code"`
	Total        decimal.Decimal `db:"total"`
}
