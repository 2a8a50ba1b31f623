package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/models"
)

// expectReserveLedger wires the ledger expectations shared by every matcher
// test, which all go through a reservation creation.
func expectReserveLedger(ctx context.Context, h testServiceHelper, montant string) {
	h.mockBudgetLineRepository.EXPECT().GetForUpdate(ctx, "LIG-001").
		Return(testBudgetLine("10000000", "0", "0", "0"), nil)
	h.mockBudgetLineRepository.EXPECT().
		MarkOperationApplied(ctx, gomock.Any(), "reserve", "LIG-001", dec(montant)).
		Return(true, nil)
	h.mockBudgetLineRepository.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	h.mockDocumentRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)
}

func createReservation(t *testing.T, h testServiceHelper, ctx context.Context, montant string) models.JournalPosting {
	t.Helper()

	var posting models.JournalPosting
	h.mockJournalRepository.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.JournalPosting) error {
			posting = p
			return nil
		})

	_, err := h.reservationService.Create(ctx, models.CreateDocumentIn{
		Kind:         models.OperationReservation,
		BudgetLineID: "LIG-001",
		Objet:        "travaux de voirie",
		Montant:      dec(montant),
	})
	require.NoError(t, err)

	return posting
}

func TestRuleMatcher_FirstMatchInOrdreWins(t *testing.T) {
	bigAmounts := models.AccountingRule{
		ID:            "RGL-A",
		TypeOperation: models.OperationReservation,
		Libelle:       "gros montants",
		Conditions: models.Conditions{
			{Champ: models.FactMontant, Operateur: models.OperatorGt, Valeur: models.NumberValue(dec("500000"))},
		},
		CompteDebit:  "601",
		CompteCredit: "401",
		Actif:        true,
		Ordre:        1,
		Permanente:   true,
	}
	fallback := catchAllRule("RGL-B", models.OperationReservation, 2, "602", "401")
	rules := []models.AccountingRule{bigAmounts, fallback}

	t.Run("amount above the threshold selects the first rule", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		expectReserveLedger(ctx, h, "600000")
		h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationReservation).Return(rules, nil)

		posting := createReservation(t, h, ctx, "600000")
		assert.Equal(t, "RGL-A", posting.RuleID)
		assert.Equal(t, "601", posting.CompteDebit)
	})

	t.Run("amount below the threshold falls through to the catch-all", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		expectReserveLedger(ctx, h, "100000")
		h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationReservation).Return(rules, nil)

		posting := createReservation(t, h, ctx, "100000")
		assert.Equal(t, "RGL-B", posting.RuleID)
		assert.Equal(t, "602", posting.CompteDebit)
	})
}

func TestRuleMatcher_ValidityWindow(t *testing.T) {
	windowStart := testNow.AddDate(0, -1, 0)
	expiredEnd := testNow.AddDate(0, 0, -1)
	openEnd := testNow.AddDate(0, 1, 0)

	newWindowRule := func(id string, ordre int, debut, fin *time.Time) models.AccountingRule {
		r := catchAllRule(id, models.OperationReservation, ordre, "603", "401")
		r.Permanente = false
		r.DateDebut = debut
		r.DateFin = fin
		return r
	}

	t.Run("expired rule is skipped in favor of a later one", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		expired := newWindowRule("RGL-EXP", 1, &windowStart, &expiredEnd)
		current := catchAllRule("RGL-CUR", models.OperationReservation, 2, "604", "401")

		expectReserveLedger(ctx, h, "50000")
		h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationReservation).
			Return([]models.AccountingRule{expired, current}, nil)

		posting := createReservation(t, h, ctx, "50000")
		assert.Equal(t, "RGL-CUR", posting.RuleID)
	})

	t.Run("rule inside its window applies", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		inWindow := newWindowRule("RGL-WIN", 1, &windowStart, &openEnd)

		expectReserveLedger(ctx, h, "50000")
		h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationReservation).
			Return([]models.AccountingRule{inWindow}, nil)

		posting := createReservation(t, h, ctx, "50000")
		assert.Equal(t, "RGL-WIN", posting.RuleID)
	})

	t.Run("non-permanent rule without a window never applies", func(t *testing.T) {
		h := serviceTestHelper(t)
		ctx := context.Background()

		windowless := newWindowRule("RGL-NUL", 1, nil, nil)

		expectReserveLedger(ctx, h, "50000")
		h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationReservation).
			Return([]models.AccountingRule{windowless}, nil)

		_, err := h.reservationService.Create(ctx, models.CreateDocumentIn{
			Kind:         models.OperationReservation,
			BudgetLineID: "LIG-001",
			Objet:        "travaux de voirie",
			Montant:      dec("50000"),
		})
		assert.ErrorIs(t, err, common.ErrNoApplicableRule)
	})
}

func TestRuleMatcher_ExerciceFact(t *testing.T) {
	// the ledger line carries exercice 2024, which rules may condition on
	byExercice := models.AccountingRule{
		ID:            "RGL-EX",
		TypeOperation: models.OperationReservation,
		Libelle:       "credits exercice 2024",
		Conditions: models.Conditions{
			{Champ: models.FactExercice, Operateur: models.OperatorEq, Valeur: models.NumberValue(dec("2024"))},
		},
		CompteDebit:  "606",
		CompteCredit: "401",
		Actif:        true,
		Ordre:        1,
		Permanente:   true,
	}
	fallback := catchAllRule("RGL-FBK", models.OperationReservation, 2, "602", "401")

	h := serviceTestHelper(t)
	ctx := context.Background()

	expectReserveLedger(ctx, h, "75000")
	h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationReservation).
		Return([]models.AccountingRule{byExercice, fallback}, nil)

	posting := createReservation(t, h, ctx, "75000")
	assert.Equal(t, "RGL-EX", posting.RuleID)
	assert.Equal(t, "606", posting.CompteDebit)
}

func TestRuleMatcher_OperatorDowngrade(t *testing.T) {
	// "contient" is a text operator; on the numeric montant field it is
	// downgraded to equality instead of failing the whole ruleset.
	h := serviceTestHelper(t)
	ctx := context.Background()

	lenient := models.AccountingRule{
		ID:            "RGL-DWN",
		TypeOperation: models.OperationReservation,
		Conditions: models.Conditions{
			{Champ: models.FactMontant, Operateur: models.OperatorContient, Valeur: models.NumberValue(dec("250000"))},
		},
		CompteDebit:  "605",
		CompteCredit: "401",
		Actif:        true,
		Ordre:        1,
		Permanente:   true,
	}

	expectReserveLedger(ctx, h, "250000")
	h.mockRuleRepository.EXPECT().ListActive(ctx, models.OperationReservation).
		Return([]models.AccountingRule{lenient}, nil)

	posting := createReservation(t, h, ctx, "250000")
	assert.Equal(t, "RGL-DWN", posting.RuleID)
}
