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

func paymentIn(expenseID, montant string) models.CreateDocumentIn {
	return models.CreateDocumentIn{
		Kind:       models.OperationPayment,
		SourceKind: kindPtr(models.SourceExpense),
		SourceID:   &expenseID,
		Objet:      "virement",
		Montant:    dec(montant),
	}
}

func payableExpense(montant, paye string) *models.CommitmentDocument {
	doc := expenseDoc("DEP-001", models.ExpenseStatusOrdonnancee, models.SourceBudgetLine, "LIG-001")
	doc.Montant = dec(montant)
	doc.MontantPaye = dec(paye)
	return doc
}

func TestPaymentService_Create(t *testing.T) {
	t.Run("pays an ordonnanced expense", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		exp := payableExpense("300000", "0")
		line := testBudgetLine("1000000", "0", "300000", "0")

		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "DEP-001").Return(exp, nil)
		h.mockBudgetLineRepository.EXPECT().GetForUpdate(ctx, "LIG-001").Return(line, nil)
		h.mockBudgetLineRepository.EXPECT().
			MarkOperationApplied(ctx, gomock.Any(), "pay", "LIG-001", dec("200000")).
			Return(true, nil)
		h.mockBudgetLineRepository.EXPECT().Save(ctx, line).Return(nil)
		h.mockDocumentRepository.EXPECT().Update(ctx, exp).Return(nil)
		h.mockDocumentRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationPayment).
			Return([]models.AccountingRule{catchAllRule("RGL-006", models.OperationPayment, 1, "401", "515")}, nil)
		h.mockJournalRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		doc, err := h.paymentService.Create(ctx, paymentIn("DEP-001", "200000"))
		require.NoError(t, err)

		assert.Equal(t, models.PaymentStatusActif, doc.Statut)
		assert.Equal(t, "LIG-001", doc.BudgetLineID)
		assert.True(t, exp.MontantPaye.Equal(dec("200000")))
		assert.Equal(t, models.ExpenseStatusOrdonnancee, exp.Statut)
		assert.True(t, line.MontantPaye().Equal(dec("200000")))
	})

	t.Run("final payment settles the expense", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		exp := payableExpense("300000", "200000")
		line := testBudgetLine("1000000", "0", "300000", "200000")

		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "DEP-001").Return(exp, nil)
		h.mockBudgetLineRepository.EXPECT().GetForUpdate(ctx, "LIG-001").Return(line, nil)
		h.mockBudgetLineRepository.EXPECT().
			MarkOperationApplied(ctx, gomock.Any(), "pay", "LIG-001", dec("100000")).
			Return(true, nil)
		h.mockBudgetLineRepository.EXPECT().Save(ctx, line).Return(nil)
		h.mockDocumentRepository.EXPECT().Update(ctx, exp).Return(nil)
		h.mockDocumentRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationPayment).
			Return([]models.AccountingRule{catchAllRule("RGL-006", models.OperationPayment, 1, "401", "515")}, nil)
		h.mockJournalRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := h.paymentService.Create(ctx, paymentIn("DEP-001", "100000"))
		require.NoError(t, err)

		assert.Equal(t, models.ExpenseStatusPayee, exp.Statut)
		require.NotNil(t, exp.PaidAt)
	})

	t.Run("rejects a payment above the reste a payer", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		exp := payableExpense("300000", "200000")
		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "DEP-001").Return(exp, nil)

		_, err := h.paymentService.Create(ctx, paymentIn("DEP-001", "200000"))
		assert.ErrorIs(t, err, common.ErrExceedsRemainingPayable)
	})

	t.Run("rejects a payment bounded by the settled invoice", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		exp := payableExpense("300000", "0")
		exp.SourceKind = kindPtr(models.SourceInvoice)
		exp.SourceID = strPtr("FAC-001")

		inv := &models.CommitmentDocument{
			ID:           "FAC-001",
			Kind:         models.OperationInvoice,
			BudgetLineID: "LIG-001",
			Montant:      dec("300000"),
			MontantPaye:  dec("150000"),
			Statut:       models.InvoiceStatusValidee,
		}

		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "DEP-001").Return(exp, nil)
		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "FAC-001").Return(inv, nil)

		_, err := h.paymentService.Create(ctx, paymentIn("DEP-001", "200000"))
		assert.ErrorIs(t, err, common.ErrExceedsRemainingPayable)
	})

	t.Run("payment pays the settled invoice down as well", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		exp := payableExpense("300000", "200000")
		exp.SourceKind = kindPtr(models.SourceInvoice)
		exp.SourceID = strPtr("FAC-001")

		inv := &models.CommitmentDocument{
			ID:           "FAC-001",
			Kind:         models.OperationInvoice,
			BudgetLineID: "LIG-001",
			Montant:      dec("300000"),
			MontantPaye:  dec("200000"),
			Statut:       models.InvoiceStatusValidee,
		}

		line := testBudgetLine("1000000", "0", "300000", "200000")

		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "DEP-001").Return(exp, nil)
		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "FAC-001").Return(inv, nil)
		h.mockBudgetLineRepository.EXPECT().GetForUpdate(ctx, "LIG-001").Return(line, nil)
		h.mockBudgetLineRepository.EXPECT().
			MarkOperationApplied(ctx, gomock.Any(), "pay", "LIG-001", dec("100000")).
			Return(true, nil)
		h.mockBudgetLineRepository.EXPECT().Save(ctx, line).Return(nil)
		h.mockDocumentRepository.EXPECT().Update(ctx, exp).Return(nil)
		h.mockDocumentRepository.EXPECT().Update(ctx, inv).Return(nil)
		h.mockDocumentRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationPayment).
			Return([]models.AccountingRule{catchAllRule("RGL-006", models.OperationPayment, 1, "401", "515")}, nil)
		h.mockJournalRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := h.paymentService.Create(ctx, paymentIn("DEP-001", "100000"))
		require.NoError(t, err)

		assert.True(t, inv.MontantPaye.Equal(dec("300000")))
		assert.Equal(t, models.InvoiceStatusPayee, inv.Statut)
		assert.Equal(t, models.ExpenseStatusPayee, exp.Statut)
	})

	t.Run("payment without an expense reference is rejected", func(t *testing.T) {
		h := serviceTestHelper(t)

		_, err := h.paymentService.Create(context.Background(), models.CreateDocumentIn{
			Kind:    models.OperationPayment,
			Objet:   "virement",
			Montant: dec("100000"),
		})
		assert.ErrorIs(t, err, common.ErrMissingImputation)
	})

	t.Run("expense not yet ordonnanced cannot be paid", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		exp := payableExpense("300000", "0")
		exp.Statut = models.ExpenseStatusValidee
		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "DEP-001").Return(exp, nil)

		_, err := h.paymentService.Create(ctx, paymentIn("DEP-001", "100000"))
		assert.ErrorIs(t, err, common.ErrInvalidTransition)
	})
}

func TestPaymentService_Cancel(t *testing.T) {
	newPayment := func() *models.CommitmentDocument {
		return &models.CommitmentDocument{
			ID:           "PAY-001",
			Kind:         models.OperationPayment,
			BudgetLineID: "LIG-001",
			SourceKind:   kindPtr(models.SourceExpense),
			SourceID:     strPtr("DEP-001"),
			Objet:        "virement",
			Montant:      dec("100000"),
			MontantPaye:  decimal.Zero,
			Statut:       models.PaymentStatusActif,
			Version:      1,
		}
	}

	t.Run("reverses the payment on the line and the expense", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		doc := newPayment()
		exp := payableExpense("300000", "100000")
		line := testBudgetLine("1000000", "0", "300000", "100000")

		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "PAY-001").Return(doc, nil)
		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "DEP-001").Return(exp, nil)
		h.mockBudgetLineRepository.EXPECT().GetForUpdate(ctx, "LIG-001").Return(line, nil)
		h.mockBudgetLineRepository.EXPECT().
			MarkOperationApplied(ctx, "PAY-001", "unpay", "LIG-001", dec("100000")).
			Return(true, nil)
		h.mockBudgetLineRepository.EXPECT().Save(ctx, line).Return(nil)
		h.mockDocumentRepository.EXPECT().Update(ctx, exp).Return(nil)
		h.mockDocumentRepository.EXPECT().Update(ctx, doc).Return(nil)
		h.mockJournalRepository.EXPECT().ListUnreversedByDocument(ctx, "PAY-001").Return(nil, nil)

		res, err := h.paymentService.Cancel(ctx, "PAY-001")
		require.NoError(t, err)

		assert.Equal(t, models.PaymentStatusAnnule, res.Statut)
		assert.True(t, exp.MontantPaye.IsZero())
		assert.True(t, line.MontantPaye().IsZero())
	})

	t.Run("payment of a settled expense is untouchable", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		doc := newPayment()
		exp := payableExpense("300000", "300000")
		exp.Statut = models.ExpenseStatusPayee

		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "PAY-001").Return(doc, nil)
		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "DEP-001").Return(exp, nil)

		_, err := h.paymentService.Cancel(ctx, "PAY-001")
		assert.ErrorIs(t, err, common.ErrDocumentImmutable)
	})

	t.Run("payment missing its expense reference cannot be cancelled", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		doc := newPayment()
		doc.SourceKind = nil
		doc.SourceID = nil
		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "PAY-001").Return(doc, nil)

		_, err := h.paymentService.Cancel(ctx, "PAY-001")
		assert.ErrorIs(t, err, common.ErrMissingImputation)
	})

	t.Run("cancelled payment cannot be cancelled twice", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		doc := newPayment()
		doc.Statut = models.PaymentStatusAnnule
		exp := payableExpense("300000", "0")

		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "PAY-001").Return(doc, nil)
		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "DEP-001").Return(exp, nil)

		_, err := h.paymentService.Cancel(ctx, "PAY-001")
		assert.ErrorIs(t, err, common.ErrDocumentImmutable)
	})
}
