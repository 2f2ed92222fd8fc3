package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bizdocs_dashboard/internal/apperrors"
	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/services"
)

// MaxRecentDocuments bounds ListRecentDocuments.
const MaxRecentDocuments = 50

type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentReader
}

// NewDocumentService creates a new document service
func NewDocumentService(documentRepo portsrepo.DocumentReader) portssvc.DocumentSvc {
	return &documentService{documentRepo: documentRepo}
}

var _ portssvc.DocumentSvc = (*documentService)(nil)

func (s *documentService) ListRecentDocuments(ctx context.Context, userID string, limit int) ([]domain.Document, error) {
	if limit < 1 || limit > MaxRecentDocuments {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", apperrors.ErrValidation, MaxRecentDocuments)
	}

	docs, err := s.documentRepo.ListRecentDocuments(ctx, userID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent documents", slog.String("user_id", userID))
		return nil, apperrors.DataAccess("list recent documents", err)
	}
	if docs == nil {
		docs = []domain.Document{}
	}

	s.LogDebug(ctx, "Recent documents listed", slog.String("user_id", userID), slog.Int("count", len(docs)))
	return docs, nil
}
