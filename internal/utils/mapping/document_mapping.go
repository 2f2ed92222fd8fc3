package mapping

import (
	"strings"

	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	"github.com/SscSPs/bizdocs_dashboard/internal/models"
)

// ToDomainTimestamps converts model Timestamps to domain Timestamps
func ToDomainTimestamps(m models.Timestamps) domain.Timestamps {
	return domain.Timestamps{
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	d := domain.Document{
		DocumentID:     m.DocumentID,
		UserID:         m.UserID,
		DocumentType:   domain.DocumentType(m.DocumentType),
		Status:         domain.DocumentStatus(m.Status),
		DocumentNumber: m.DocumentNumber,
		CustomerName:   m.CustomerName,
		TotalAmount:    m.TotalAmount,
		CurrencyCode:   normalizeCode(m.CurrencyCode),
		DueDate:        m.DueDate,
		Timestamps:     ToDomainTimestamps(m.Timestamps),
	}
	if m.IssueDate != nil {
		d.IssueDate = *m.IssueDate
	}
	return d
}

// ToDomainDocumentSlice converts a slice of model Documents to a slice of domain Documents
func ToDomainDocumentSlice(ms []models.Document) []domain.Document {
	ds := make([]domain.Document, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocument(m)
	}
	return ds
}

// ToDomainDocumentAmountSlice converts revenue rows to domain DocumentAmounts
func ToDomainDocumentAmountSlice(ms []models.DocumentAmount) []domain.DocumentAmount {
	ds := make([]domain.DocumentAmount, len(ms))
	for i, m := range ms {
		ds[i] = domain.DocumentAmount{
			MonetaryAmount: domain.MonetaryAmount{Amount: m.TotalAmount, CurrencyCode: normalizeCode(m.CurrencyCode)},
			CreatedAt:      m.CreatedAt,
		}
	}
	return ds
}

// ToDomainMonetaryAmountSlice converts per-currency totals to domain MonetaryAmounts
func ToDomainMonetaryAmountSlice(ms []models.CurrencyTotal) []domain.MonetaryAmount {
	ds := make([]domain.MonetaryAmount, len(ms))
	for i, m := range ms {
		ds[i] = domain.MonetaryAmount{Amount: m.Total, CurrencyCode: normalizeCode(m.CurrencyCode)}
	}
	return ds
}

// currency_code is CHAR(3); trim any padding and tolerate lower-case input from older rows.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
