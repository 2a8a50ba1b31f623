package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/models"
)

func invoiceDoc(id, statut string) *models.CommitmentDocument {
	return &models.CommitmentDocument{
		ID:            id,
		Kind:          models.OperationInvoice,
		BudgetLineID:  "LIG-001",
		FournisseurID: strPtr("FRN-042"),
		Objet:         "facture maintenance",
		Montant:       dec("180000"),
		MontantPaye:   decimal.Zero,
		Statut:        statut,
		CreatedAt:     testNow,
		LastUpdatedAt: testNow,
		Version:       1,
	}
}

func TestInvoiceService_Create(t *testing.T) {
	t.Run("rejects two beneficiaries", func(t *testing.T) {
		h := serviceTestHelper(t)

		_, err := h.invoiceService.Create(context.Background(), models.CreateDocumentIn{
			Kind:              models.OperationInvoice,
			BudgetLineID:      "LIG-001",
			FournisseurID:     strPtr("FRN-042"),
			BeneficiaireLibre: strPtr("Jean Dupont"),
			Objet:             "facture maintenance",
			Montant:           dec("180000"),
		})
		assert.ErrorIs(t, err, common.ErrAmbiguousBeneficiary)
	})

	t.Run("free-text payee is enough", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		h.mockDocumentRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		doc, err := h.invoiceService.Create(ctx, models.CreateDocumentIn{
			Kind:              models.OperationInvoice,
			BudgetLineID:      "LIG-001",
			BeneficiaireLibre: strPtr("Jean Dupont"),
			Objet:             "facture maintenance",
			Montant:           dec("180000"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.InvoiceStatusBrouillon, doc.Statut)
	})

	t.Run("source engagement must exist on the same line", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		src := engagementDoc("ENG-001", models.EngagementStatusValide)
		src.BudgetLineID = "LIG-999"
		h.mockDocumentRepository.EXPECT().Get(ctx, "ENG-001").Return(src, nil)

		_, err := h.invoiceService.Create(ctx, models.CreateDocumentIn{
			Kind:          models.OperationInvoice,
			BudgetLineID:  "LIG-001",
			SourceKind:    kindPtr(models.SourceEngagement),
			SourceID:      strPtr("ENG-001"),
			FournisseurID: strPtr("FRN-042"),
			Objet:         "facture maintenance",
			Montant:       dec("180000"),
		})
		assert.ErrorIs(t, err, common.ErrDocumentNotFound)
	})
}

func TestInvoiceService_Validate(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	doc := invoiceDoc("FAC-001", models.InvoiceStatusBrouillon)

	h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "FAC-001").Return(doc, nil)
	h.mockDocumentRepository.EXPECT().Update(ctx, doc).Return(nil)
	h.mockBudgetLineRepository.EXPECT().Get(ctx, "LIG-001").
		Return(testBudgetLine("1000000", "0", "400000", "0"), nil)
	h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationInvoice).
		Return([]models.AccountingRule{catchAllRule("RGL-004", models.OperationInvoice, 1, "606", "4011")}, nil)
	h.mockJournalRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	res, err := h.invoiceService.Validate(ctx, "FAC-001")
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusValidee, res.Statut)
	require.NotNil(t, res.ValidatedAt)
}

func TestInvoiceService_Cancel(t *testing.T) {
	t.Run("partially paid invoice cannot be cancelled", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		doc := invoiceDoc("FAC-001", models.InvoiceStatusValidee)
		doc.MontantPaye = dec("50000")
		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "FAC-001").Return(doc, nil)

		_, err := h.invoiceService.Cancel(ctx, "FAC-001")
		assert.ErrorIs(t, err, common.ErrDocumentImmutable)
	})

	t.Run("unpaid invoice is cancelled and its postings reversed", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		doc := invoiceDoc("FAC-001", models.InvoiceStatusValidee)

		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "FAC-001").Return(doc, nil)
		h.mockDocumentRepository.EXPECT().Update(ctx, doc).Return(nil)
		h.mockJournalRepository.EXPECT().ListUnreversedByDocument(ctx, "FAC-001").
			Return([]models.JournalPosting{{
				ID:           "JRN-010",
				DocumentID:   "FAC-001",
				Operation:    models.OperationInvoice,
				CompteDebit:  "606",
				CompteCredit: "4011",
				Montant:      dec("180000"),
			}}, nil)
		h.mockJournalRepository.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.JournalPosting) error {
				assert.True(t, p.Reversal)
				assert.Equal(t, "4011", p.CompteDebit)
				assert.Equal(t, "606", p.CompteCredit)
				return nil
			})

		res, err := h.invoiceService.Cancel(ctx, "FAC-001")
		require.NoError(t, err)
		assert.Equal(t, models.InvoiceStatusAnnulee, res.Statut)
	})
}
