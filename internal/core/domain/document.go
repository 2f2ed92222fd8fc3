package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType identifies the kind of business document.
type DocumentType string

const (
	Invoice       DocumentType = "INVOICE"
	Receipt       DocumentType = "RECEIPT"
	Quote         DocumentType = "QUOTE"
	CreditNote    DocumentType = "CREDIT_NOTE"
	PurchaseOrder DocumentType = "PURCHASE_ORDER"
	DeliveryNote  DocumentType = "DELIVERY_NOTE"
)

// DocumentStatus is the lifecycle state of a document.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "DRAFT"
	StatusSent      DocumentStatus = "SENT"
	StatusPaid      DocumentStatus = "PAID"
	StatusOverdue   DocumentStatus = "OVERDUE"
	StatusCancelled DocumentStatus = "CANCELLED"
)

// RevenueDocumentTypes are the document types whose totals count as revenue.
// Credit notes are stored with negative totals.
func RevenueDocumentTypes() []DocumentType {
	return []DocumentType{Invoice, Receipt, CreditNote}
}

// NonRevenueStatuses are excluded from revenue sums.
func NonRevenueStatuses() []DocumentStatus {
	return []DocumentStatus{StatusDraft, StatusCancelled}
}

// Document is the read model of a stored business document.
type Document struct {
	DocumentID     string          `json:"documentID"`
	UserID         string          `json:"userID"`
	DocumentType   DocumentType    `json:"documentType"`
	Status         DocumentStatus  `json:"status"`
	DocumentNumber string          `json:"documentNumber"`
	CustomerName   string          `json:"customerName"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	CurrencyCode   string          `json:"currencyCode"`
	IssueDate      time.Time       `json:"issueDate"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	Timestamps
}

// DocumentAmount is the slice of a document the revenue aggregation needs.
type DocumentAmount struct {
	MonetaryAmount
	CreatedAt time.Time `json:"createdAt"`
}

// DocumentFilter narrows a document count. Nil fields are not filtered on.
type DocumentFilter struct {
	Status *DocumentStatus
	From   *time.Time
	To     *time.Time
}
