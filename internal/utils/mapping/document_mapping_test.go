package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	"github.com/SscSPs/bizdocs_dashboard/internal/models"
	"github.com/SscSPs/bizdocs_dashboard/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainDocument(t *testing.T) {
	issued := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	d := mapping.ToDomainDocument(models.Document{
		DocumentID:     "doc-1",
		UserID:         "user-1",
		DocumentType:   "INVOICE",
		Status:         "PAID",
		DocumentNumber: "INV-001",
		CustomerName:   "Acme",
		TotalAmount:    decimal.RequireFromString("150.50"),
		CurrencyCode:   "usd",
		IssueDate:      &issued,
		Timestamps:     models.Timestamps{CreatedAt: created, UpdatedAt: created},
	})

	assert.Equal(t, domain.Invoice, d.DocumentType)
	assert.Equal(t, domain.StatusPaid, d.Status)
	assert.Equal(t, "USD", d.CurrencyCode)
	assert.Equal(t, issued, d.IssueDate)
	assert.Nil(t, d.DueDate)
	assert.Equal(t, created, d.CreatedAt)
	assert.True(t, d.TotalAmount.Equal(decimal.RequireFromString("150.5")))
}

func TestToDomainDocumentAmountSlice(t *testing.T) {
	created := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	out := mapping.ToDomainDocumentAmountSlice([]models.DocumentAmount{
		{TotalAmount: decimal.NewFromInt(10), CurrencyCode: "UGX", CreatedAt: created},
	})

	assert.Len(t, out, 1)
	assert.Equal(t, "UGX", out[0].CurrencyCode)
	assert.Equal(t, created, out[0].CreatedAt)
	assert.Empty(t, mapping.ToDomainMonetaryAmountSlice(nil))
}
