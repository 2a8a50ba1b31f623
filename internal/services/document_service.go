package services

import (
	"context"

	"github.com/publibudget/go-commitment-engine/internal/models"
)

// DocumentService serves the read side shared by all six stages.
type DocumentService interface {
	Get(ctx context.Context, id string) (*models.CommitmentDocument, error)
	List(ctx context.Context, opts models.DocumentFilterOptions) ([]models.CommitmentDocument, error)
	ListPostings(ctx context.Context, documentID string) ([]models.JournalPosting, error)
}

type document service

var _ DocumentService = (*document)(nil)

func (s *document) Get(ctx context.Context, id string) (*models.CommitmentDocument, error) {
	return s.srv.sqlRepo.GetDocumentRepository().Get(ctx, id)
}

func (s *document) List(ctx context.Context, opts models.DocumentFilterOptions) ([]models.CommitmentDocument, error) {
	return s.srv.sqlRepo.GetDocumentRepository().List(ctx, opts)
}

func (s *document) ListPostings(ctx context.Context, documentID string) ([]models.JournalPosting, error) {
	return s.srv.sqlRepo.GetJournalRepository().ListByDocument(ctx, documentID)
}
