package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/bizdocs_dashboard/internal/apperrors"
	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/bizdocs_dashboard/internal/models"
	"github.com/SscSPs/bizdocs_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const maxRecentDocuments = 100

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for document data.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

// CountDocuments counts the user's documents, optionally narrowed by status and creation range.
func (r *PgxDocumentRepository) CountDocuments(ctx context.Context, userID string, filter domain.DocumentFilter) (int, error) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)))
	}

	query := "SELECT COUNT(*) FROM documents WHERE " + strings.Join(conditions, " AND ")

	var count int
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.DataAccess("count documents", err)
	}
	return count, nil
}

// ListRecentDocuments returns at most limit documents ordered by creation time, newest first.
func (r *PgxDocumentRepository) ListRecentDocuments(ctx context.Context, userID string, limit int) ([]domain.Document, error) {
	if limit <= 0 || limit > maxRecentDocuments {
		limit = maxRecentDocuments
	}

	query := `
		SELECT document_id, user_id, document_type, status, document_number, customer_name,
			total_amount, currency_code, issue_date, due_date, created_at, updated_at
		FROM documents
		WHERE user_id = $1
		ORDER BY created_at DESC, document_id
		LIMIT $2;
	`

	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, apperrors.DataAccess("list recent documents", err)
	}
	modelDocs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Document])
	if err != nil {
		return nil, apperrors.DataAccess("scan recent documents", err)
	}

	return mapping.ToDomainDocumentSlice(modelDocs), nil
}
