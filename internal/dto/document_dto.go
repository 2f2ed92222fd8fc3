package dto

import (
	"time"

	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecentDocumentsQuery defines the query parameters of GET /documents/recent.
type RecentDocumentsQuery struct {
	Limit int `form:"limit,default=5" binding:"min=1,max=50"`
}

// DocumentResponse is the dashboard view of a document.
type DocumentResponse struct {
	DocumentID      string          `json:"documentID"`
	DocumentType    string          `json:"documentType" example:"INVOICE"`
	Status          string          `json:"status" example:"PAID"`
	DocumentNumber  string          `json:"documentNumber" example:"INV-0001"`
	CustomerName    string          `json:"customerName"`
	TotalAmount     decimal.Decimal `json:"totalAmount" swaggertype:"string" example:"150.00"`
	CurrencyCode    string          `json:"currencyCode" example:"USD"`
	FormattedAmount string          `json:"formattedAmount" example:"$150.00"`
	IssueDate       *string         `json:"issueDate,omitempty" example:"2026-10-01"`
	DueDate         *string         `json:"dueDate,omitempty" example:"2026-10-31"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// RecentDocumentsResponse is the body of GET /documents/recent.
type RecentDocumentsResponse struct {
	Success   bool               `json:"success" example:"true"`
	Documents []DocumentResponse `json:"documents"`
}

// ToDocumentResponse converts a domain Document. formatted is the amount rendered in its currency.
func ToDocumentResponse(d domain.Document, formatted string) DocumentResponse {
	res := DocumentResponse{
		DocumentID:      d.DocumentID,
		DocumentType:    string(d.DocumentType),
		Status:          string(d.Status),
		DocumentNumber:  d.DocumentNumber,
		CustomerName:    d.CustomerName,
		TotalAmount:     d.TotalAmount,
		CurrencyCode:    d.CurrencyCode,
		FormattedAmount: formatted,
		CreatedAt:       d.CreatedAt,
	}
	if !d.IssueDate.IsZero() {
		s := d.IssueDate.Format(time.DateOnly)
		res.IssueDate = &s
	}
	if d.DueDate != nil {
		s := d.DueDate.Format(time.DateOnly)
		res.DueDate = &s
	}
	return res
}
