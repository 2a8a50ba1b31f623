package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/models"
)

func TestDocumentService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		h.mockDocumentRepository.EXPECT().Get(ctx, "ENG-001").
			Return(engagementDoc("ENG-001", models.EngagementStatusValide), nil)

		doc, err := h.documentService.Get(ctx, "ENG-001")
		require.NoError(t, err)
		assert.Equal(t, models.OperationEngagement, doc.Kind)
	})

	t.Run("not found", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		h.mockDocumentRepository.EXPECT().Get(ctx, "ENG-404").
			Return(nil, common.ErrDocumentNotFound)

		_, err := h.documentService.Get(ctx, "ENG-404")
		assert.ErrorIs(t, err, common.ErrDocumentNotFound)
	})
}

func TestDocumentService_ListPostings(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	h.mockJournalRepository.EXPECT().ListByDocument(ctx, "ENG-001").
		Return([]models.JournalPosting{
			{ID: "JRN-001", DocumentID: "ENG-001"},
			{ID: "JRN-002", DocumentID: "ENG-001", Reversal: true, ReversesID: "JRN-001"},
		}, nil)

	postings, err := h.documentService.ListPostings(ctx, "ENG-001")
	require.NoError(t, err)
	assert.Len(t, postings, 2)
}
