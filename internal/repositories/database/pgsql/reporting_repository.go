package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/bizdocs_dashboard/internal/apperrors"
	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/bizdocs_dashboard/internal/models"
	"github.com/SscSPs/bizdocs_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// revenueFilter is shared by all revenue queries. $1 user, $2/$3 half-open creation range,
// $4 revenue document types, $5 excluded statuses.
const revenueFilter = `
		WHERE user_id = $1
			AND created_at >= $2
			AND created_at < $3
			AND document_type = ANY($4::text[])
			AND NOT (status = ANY($5::text[]))
`

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// ListRevenueAmounts retrieves the amount, currency and creation time of each revenue document in range.
func (r *reportingRepository) ListRevenueAmounts(ctx context.Context, userID string, from, to time.Time) ([]domain.DocumentAmount, error) {
	query := `
		SELECT total_amount, currency_code, created_at
		FROM documents` + revenueFilter + `
		ORDER BY created_at;
	`

	rows, err := r.Pool.Query(ctx, query, revenueArgs(userID, from, to)...)
	if err != nil {
		return nil, apperrors.DataAccess("query revenue amounts", err)
	}
	amounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DocumentAmount])
	if err != nil {
		return nil, apperrors.DataAccess("scan revenue amounts", err)
	}

	return mapping.ToDomainDocumentAmountSlice(amounts), nil
}

// SumRevenueByCurrency totals revenue documents in range per native currency.
func (r *reportingRepository) SumRevenueByCurrency(ctx context.Context, userID string, from, to time.Time) ([]domain.MonetaryAmount, error) {
	query := `
		SELECT currency_code, SUM(total_amount) AS total
		FROM documents` + revenueFilter + `
		GROUP BY currency_code
		ORDER BY currency_code;
	`

	rows, err := r.Pool.Query(ctx, query, revenueArgs(userID, from, to)...)
	if err != nil {
		return nil, apperrors.DataAccess("query revenue totals", err)
	}
	totals, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CurrencyTotal])
	if err != nil {
		return nil, apperrors.DataAccess("scan revenue totals", err)
	}

	return mapping.ToDomainMonetaryAmountSlice(totals), nil
}

func revenueArgs(userID string, from, to time.Time) []any {
	types := make([]string, 0, len(domain.RevenueDocumentTypes()))
	for _, t := range domain.RevenueDocumentTypes() {
		types = append(types, string(t))
	}
	statuses := make([]string, 0, len(domain.NonRevenueStatuses()))
	for _, s := range domain.NonRevenueStatuses() {
		statuses = append(statuses, string(s))
	}
	return []any{userID, from, to, types, statuses}
}
