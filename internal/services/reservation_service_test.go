package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/config"
	"github.com/publibudget/go-commitment-engine/internal/models"
)

func TestReservationService_Create(t *testing.T) {
	reservationIn := models.CreateDocumentIn{
		Kind:         models.OperationReservation,
		BudgetLineID: "LIG-001",
		Objet:        "marche fournitures T2",
		Montant:      dec("400000"),
	}

	t.Run("reserves budget and generates a posting", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		line := testBudgetLine("1000000", "0", "0", "0")
		var posting models.JournalPosting

		h.mockBudgetLineRepository.EXPECT().GetForUpdate(ctx, "LIG-001").Return(line, nil)
		h.mockBudgetLineRepository.EXPECT().
			MarkOperationApplied(ctx, gomock.Any(), "reserve", "LIG-001", dec("400000")).
			Return(true, nil)
		h.mockBudgetLineRepository.EXPECT().Save(ctx, line).Return(nil)
		h.mockDocumentRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationReservation).
			Return([]models.AccountingRule{catchAllRule("RGL-001", models.OperationReservation, 1, "6011", "4011")}, nil)
		h.mockJournalRepository.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.JournalPosting) error {
				posting = p
				return nil
			})

		doc, err := h.reservationService.Create(ctx, reservationIn)
		require.NoError(t, err)

		assert.Equal(t, models.OperationReservation, doc.Kind)
		assert.Equal(t, models.ReservationStatusActive, doc.Statut)
		assert.True(t, doc.Montant.Equal(dec("400000")))

		assert.True(t, line.MontantReserve().Equal(dec("400000")))
		assert.True(t, line.Disponible().Equal(dec("600000")))

		assert.Equal(t, doc.ID, posting.DocumentID)
		assert.Equal(t, "RGL-001", posting.RuleID)
		assert.Equal(t, "6011", posting.CompteDebit)
		assert.Equal(t, "4011", posting.CompteCredit)
		assert.True(t, posting.Montant.Equal(dec("400000")))
		assert.False(t, posting.Reversal)
	})

	t.Run("rejects when disponible is insufficient", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		line := testBudgetLine("300000", "0", "0", "0")

		h.mockBudgetLineRepository.EXPECT().GetForUpdate(ctx, "LIG-001").Return(line, nil)
		h.mockBudgetLineRepository.EXPECT().
			MarkOperationApplied(ctx, gomock.Any(), "reserve", "LIG-001", dec("400000")).
			Return(true, nil)

		_, err := h.reservationService.Create(ctx, reservationIn)
		assert.ErrorIs(t, err, common.ErrInsufficientBalance)

		assert.True(t, line.MontantReserve().IsZero())
	})

	t.Run("blocks the transition when no rule matches", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		h.mockBudgetLineRepository.EXPECT().GetForUpdate(ctx, "LIG-001").
			Return(testBudgetLine("1000000", "0", "0", "0"), nil)
		h.mockBudgetLineRepository.EXPECT().
			MarkOperationApplied(ctx, gomock.Any(), "reserve", "LIG-001", dec("400000")).
			Return(true, nil)
		h.mockBudgetLineRepository.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		h.mockDocumentRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationReservation).
			Return([]models.AccountingRule{}, nil)

		_, err := h.reservationService.Create(ctx, reservationIn)
		assert.ErrorIs(t, err, common.ErrNoApplicableRule)
	})

	t.Run("completes without a posting when unposted transitions are allowed", func(t *testing.T) {
		conf := config.Config{}
		conf.RuleMatching.AllowUnpostedTransitions = true
		h := serviceTestHelperWithConfig(t, conf)
		ctx := context.Background()

		h.mockBudgetLineRepository.EXPECT().GetForUpdate(ctx, "LIG-001").
			Return(testBudgetLine("1000000", "0", "0", "0"), nil)
		h.mockBudgetLineRepository.EXPECT().
			MarkOperationApplied(ctx, gomock.Any(), "reserve", "LIG-001", dec("400000")).
			Return(true, nil)
		h.mockBudgetLineRepository.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		h.mockDocumentRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationReservation).
			Return([]models.AccountingRule{}, nil)

		doc, err := h.reservationService.Create(ctx, reservationIn)
		require.NoError(t, err)
		assert.Equal(t, models.ReservationStatusActive, doc.Statut)
	})

	t.Run("replayed ledger operation leaves the line untouched", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		line := testBudgetLine("1000000", "400000", "0", "0")

		h.mockBudgetLineRepository.EXPECT().GetForUpdate(ctx, "LIG-001").Return(line, nil)
		h.mockBudgetLineRepository.EXPECT().
			MarkOperationApplied(ctx, gomock.Any(), "reserve", "LIG-001", dec("400000")).
			Return(false, nil)
		h.mockDocumentRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationReservation).
			Return([]models.AccountingRule{catchAllRule("RGL-001", models.OperationReservation, 1, "6011", "4011")}, nil)
		h.mockJournalRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := h.reservationService.Create(ctx, reservationIn)
		require.NoError(t, err)

		assert.True(t, line.MontantReserve().Equal(dec("400000")))
	})

	t.Run("retries the transaction on concurrent modification", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		h.mockBudgetLineRepository.EXPECT().GetForUpdate(ctx, "LIG-001").
			DoAndReturn(func(context.Context, string) (*models.BudgetLine, error) {
				return testBudgetLine("1000000", "0", "0", "0"), nil
			}).Times(2)
		h.mockBudgetLineRepository.EXPECT().
			MarkOperationApplied(ctx, gomock.Any(), "reserve", "LIG-001", dec("400000")).
			Return(true, nil).Times(2)

		saves := 0
		h.mockBudgetLineRepository.EXPECT().Save(ctx, gomock.Any()).
			DoAndReturn(func(context.Context, *models.BudgetLine) error {
				saves++
				if saves == 1 {
					return common.ErrConcurrentModification
				}
				return nil
			}).Times(2)

		h.mockDocumentRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationReservation).
			Return([]models.AccountingRule{catchAllRule("RGL-001", models.OperationReservation, 1, "6011", "4011")}, nil)
		h.mockJournalRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := h.reservationService.Create(ctx, reservationIn)
		require.NoError(t, err)
		assert.Equal(t, 2, saves)
	})
}

func TestReservationService_Cancel(t *testing.T) {
	newReservation := func() *models.CommitmentDocument {
		return &models.CommitmentDocument{
			ID:            "RES-100",
			Kind:          models.OperationReservation,
			BudgetLineID:  "LIG-001",
			Objet:         "marche fournitures T2",
			Montant:       dec("400000"),
			MontantPaye:   decimal.Zero,
			Statut:        models.ReservationStatusActive,
			CreatedAt:     testNow,
			LastUpdatedAt: testNow,
			Version:       1,
		}
	}

	t.Run("releases the unengaged remainder and reverses postings", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		doc := newReservation()
		line := testBudgetLine("1000000", "400000", "0", "0")
		var reversal models.JournalPosting

		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "RES-100").Return(doc, nil)
		h.mockDocumentRepository.EXPECT().
			SumSourceConsumption(ctx, models.SourceReservation, "RES-100").
			Return(dec("150000"), nil)
		h.mockBudgetLineRepository.EXPECT().GetForUpdate(ctx, "LIG-001").Return(line, nil)
		h.mockBudgetLineRepository.EXPECT().
			MarkOperationApplied(ctx, "RES-100", "release", "LIG-001", dec("250000")).
			Return(true, nil)
		h.mockBudgetLineRepository.EXPECT().Save(ctx, line).Return(nil)
		h.mockDocumentRepository.EXPECT().Update(ctx, doc).Return(nil)
		h.mockJournalRepository.EXPECT().ListUnreversedByDocument(ctx, "RES-100").
			Return([]models.JournalPosting{{
				ID:           "JRN-900",
				DocumentID:   "RES-100",
				Operation:    models.OperationReservation,
				RuleID:       "RGL-001",
				CompteDebit:  "6011",
				CompteCredit: "4011",
				Montant:      dec("400000"),
				PostingDate:  testNow,
				CreatedAt:    testNow,
			}}, nil)
		h.mockJournalRepository.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.JournalPosting) error {
				reversal = p
				return nil
			})

		res, err := h.reservationService.Cancel(ctx, "RES-100")
		require.NoError(t, err)

		assert.Equal(t, models.ReservationStatusAnnulee, res.Statut)
		require.NotNil(t, res.CancelledAt)
		assert.True(t, line.MontantReserve().Equal(dec("150000")))

		assert.True(t, reversal.Reversal)
		assert.Equal(t, "JRN-900", reversal.ReversesID)
		assert.Equal(t, "4011", reversal.CompteDebit)
		assert.Equal(t, "6011", reversal.CompteCredit)
	})

	t.Run("fully engaged reservation cannot be cancelled", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		doc := newReservation()
		doc.Statut = models.ReservationStatusEpuisee

		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "RES-100").Return(doc, nil)
		h.mockDocumentRepository.EXPECT().
			SumSourceConsumption(ctx, models.SourceReservation, "RES-100").
			Return(dec("400000"), nil)

		_, err := h.reservationService.Cancel(ctx, "RES-100")
		assert.ErrorIs(t, err, common.ErrInvalidTransition)
		assert.Equal(t, models.ReservationStatusEpuisee, doc.Statut)
	})

	t.Run("already cancelled reservation is immutable", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		doc := newReservation()
		doc.Statut = models.ReservationStatusAnnulee

		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "RES-100").Return(doc, nil)
		h.mockDocumentRepository.EXPECT().
			SumSourceConsumption(ctx, models.SourceReservation, "RES-100").
			Return(decimal.Zero, nil)

		_, err := h.reservationService.Cancel(ctx, "RES-100")
		assert.ErrorIs(t, err, common.ErrDocumentImmutable)
	})

	t.Run("engagement id is not a reservation", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		h.mockDocumentRepository.EXPECT().GetForUpdate(ctx, "ENG-001").
			Return(&models.CommitmentDocument{ID: "ENG-001", Kind: models.OperationEngagement}, nil)

		_, err := h.reservationService.Cancel(ctx, "ENG-001")
		assert.ErrorIs(t, err, common.ErrDocumentNotFound)
	})
}
