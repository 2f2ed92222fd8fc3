package repositories

import (
	"context"

	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
)

// DocumentReader defines the read-only queries the dashboard runs against the document store.
// Every query is scoped to a single user.
type DocumentReader interface {
	// CountDocuments counts the user's documents matching filter.
	CountDocuments(ctx context.Context, userID string, filter domain.DocumentFilter) (int, error)

	// ListRecentDocuments returns the user's newest documents, newest first.
	ListRecentDocuments(ctx context.Context, userID string, limit int) ([]domain.Document, error)
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	HealthChecker
}
