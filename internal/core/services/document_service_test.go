package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/bizdocs_dashboard/internal/apperrors"
	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	"github.com/SscSPs/bizdocs_dashboard/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDocumentService_ListRecentDocuments(t *testing.T) {
	repo := new(MockDocumentReader)
	svc := services.NewDocumentService(repo)
	ctx := context.Background()

	docs := []domain.Document{{DocumentID: "d1", DocumentType: domain.Invoice}}
	repo.On("ListRecentDocuments", mock.Anything, "user-1", 5).Return(docs, nil).Once()

	got, err := svc.ListRecentDocuments(ctx, "user-1", 5)
	assert.NoError(t, err)
	assert.Equal(t, docs, got)
	repo.AssertExpectations(t)
}

func TestDocumentService_EmptyResultIsNotNil(t *testing.T) {
	repo := new(MockDocumentReader)
	repo.On("ListRecentDocuments", mock.Anything, "user-1", 5).Return(nil, nil).Once()

	got, err := services.NewDocumentService(repo).ListRecentDocuments(context.Background(), "user-1", 5)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDocumentService_InvalidLimit(t *testing.T) {
	repo := new(MockDocumentReader)
	svc := services.NewDocumentService(repo)

	for _, limit := range []int{0, -1, services.MaxRecentDocuments + 1} {
		_, err := svc.ListRecentDocuments(context.Background(), "user-1", limit)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "limit %d", limit)
	}
	repo.AssertNotCalled(t, "ListRecentDocuments", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentService_RepositoryError(t *testing.T) {
	repo := new(MockDocumentReader)
	repo.On("ListRecentDocuments", mock.Anything, "user-1", 5).Return(nil, errors.New("connection reset")).Once()

	_, err := services.NewDocumentService(repo).ListRecentDocuments(context.Background(), "user-1", 5)
	assert.ErrorIs(t, err, apperrors.ErrDataAccess)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthService_Check(t *testing.T) {
	assert.NoError(t, services.NewHealthService(stubPinger{}).Check(context.Background()))

	err := services.NewHealthService(stubPinger{err: errors.New("down")}).Check(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrDataAccess)
}
