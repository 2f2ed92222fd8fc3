package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
)

// ReportingRepository defines operations for retrieving revenue data.
// Ranges are half-open: from <= created_at < to.
type ReportingRepository interface {
	// ListRevenueAmounts returns the native amount and creation time of every revenue document in range.
	ListRevenueAmounts(ctx context.Context, userID string, from, to time.Time) ([]domain.DocumentAmount, error)

	// SumRevenueByCurrency returns one summed amount per currency for revenue documents in range.
	SumRevenueByCurrency(ctx context.Context, userID string, from, to time.Time) ([]domain.MonetaryAmount, error)
}
