package services

import (
	"context"

	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
)

// DocumentSvc exposes read access to a user's documents for the dashboard.
type DocumentSvc interface {
	// ListRecentDocuments returns up to limit of the user's newest documents.
	ListRecentDocuments(ctx context.Context, userID string, limit int) ([]domain.Document, error)
}
