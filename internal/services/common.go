package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/common/log"
	"github.com/publibudget/go-commitment-engine/internal/common/publisher"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/repositories"
)

// ID prefixes keep document ids recognizable in journals and audit trails.
const (
	idPrefixBudgetLine = "LIG"
	idPrefixPosting    = "JRN"
	idPrefixRule       = "RGL"
)

var documentIDPrefix = map[models.OperationType]string{
	models.OperationReservation:   "RES",
	models.OperationEngagement:    "ENG",
	models.OperationPurchaseOrder: "BDC",
	models.OperationInvoice:       "FAC",
	models.OperationExpense:       "DEP",
	models.OperationPayment:       "PAY",
}

// atomically runs steps inside a single database transaction, retrying the
// whole transaction on optimistic-lock conflicts up to the configured bound.
// The rollback performed by Atomic is the only compensation mechanism: a
// failure after a ledger mutation undoes the mutation with it.
func (srv *Services) atomically(ctx context.Context, steps func(ctx context.Context, r repositories.SQLRepository) error) error {
	return srv.retryer.Retry(ctx, func() error {
		return srv.sqlRepo.Atomic(ctx, steps)
	})
}

func (srv *Services) newDocument(in models.CreateDocumentIn, now time.Time) *models.CommitmentDocument {
	return &models.CommitmentDocument{
		ID:                srv.idgenerator.Generate(documentIDPrefix[in.Kind]),
		Kind:              in.Kind,
		BudgetLineID:      in.BudgetLineID,
		SourceKind:        in.SourceKind,
		SourceID:          in.SourceID,
		FournisseurID:     in.FournisseurID,
		BeneficiaireLibre: in.BeneficiaireLibre,
		Objet:             in.Objet,
		Montant:           in.Montant,
		MontantPaye:       decimal.Zero,
		Statut:            models.InitialStatus[in.Kind],
		CreatedAt:         now,
		LastUpdatedAt:     now,
		Version:           1,
	}
}

// getDocumentOfKind locks the document row and checks it belongs to the
// expected stage; a mismatched id is treated as not found.
func getDocumentOfKind(ctx context.Context, r repositories.SQLRepository, id string, kind models.OperationType) (*models.CommitmentDocument, error) {
	doc, err := r.GetDocumentRepository().GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if doc.Kind != kind {
		return nil, common.ErrDocumentNotFound
	}

	return doc, nil
}

// pendingEvents buffers notifications built inside a transaction. They are
// published only after commit, so a rolled back attempt leaks nothing.
type pendingEvents struct {
	balances []models.BalanceChangedEvent
	postings []models.PostingCreatedEvent
}

func (e *pendingEvents) reset() {
	e.balances = nil
	e.postings = nil
}

func (e *pendingEvents) addBalance(line *models.BudgetLine, doc *models.CommitmentDocument, op string, amount decimal.Decimal, at time.Time) {
	e.balances = append(e.balances, models.BalanceChangedEvent{
		Kind:         models.EventKindBalanceChanged,
		BudgetLineID: line.ID(),
		DocumentID:   doc.ID,
		Operation:    op,
		Montant:      models.NewDecimalFromExternal(amount),
		Disponible:   models.NewDecimalFromExternal(line.Disponible()),
		OccurredAt:   at,
	})
}

func (e *pendingEvents) addPosting(p models.JournalPosting, at time.Time) {
	e.postings = append(e.postings, models.PostingCreatedEvent{
		Kind:         models.EventKindPostingCreated,
		PostingID:    p.ID,
		DocumentID:   p.DocumentID,
		Operation:    p.Operation.String(),
		CompteDebit:  p.CompteDebit,
		CompteCredit: p.CompteCredit,
		Montant:      models.NewDecimalFromExternal(p.Montant),
		Reversal:     p.Reversal,
		OccurredAt:   at,
	})
}

// flushEvents pushes buffered events to the reporting sink. The sink is
// best-effort: failures are logged and dropped, never surfaced to the caller.
func (srv *Services) flushEvents(ctx context.Context, ev *pendingEvents) {
	for _, e := range ev.balances {
		if err := srv.balancePub.Publish(ctx, e, publisher.WithKey(e.BudgetLineID)); err != nil {
			log.Error(ctx, "[EVENT] failed to publish balance-changed event",
				log.String("budgetLineId", e.BudgetLineID),
				log.Err(err))
		}
	}

	for _, e := range ev.postings {
		if err := srv.postingPub.Publish(ctx, e, publisher.WithKey(e.DocumentID)); err != nil {
			log.Error(ctx, "[EVENT] failed to publish posting-created event",
				log.String("postingId", e.PostingID),
				log.Err(err))
		}
	}
}

// ledger operation names recorded for idempotency. A (document, operation)
// pair is applied to the ledger at most once.
const (
	ledgerOpReserve                = "reserve"
	ledgerOpRelease                = "release"
	ledgerOpEngage                 = "engage"
	ledgerOpEngageFromReservation  = "engage_from_reservation"
	ledgerOpDisengage              = "disengage"
	ledgerOpDisengageToReservation = "disengage_to_reservation"
	ledgerOpPay                    = "pay"
	ledgerOpUnpay                  = "unpay"
)

// applyLedgerOperation locks the document's budget line, applies the guarded
// mutation and saves the line. Replayed deliveries are detected through the
// applied-operation record and leave the ledger untouched.
func (srv *Services) applyLedgerOperation(ctx context.Context, r repositories.SQLRepository, doc *models.CommitmentDocument, op string, amount decimal.Decimal, ev *pendingEvents) (*models.BudgetLine, error) {
	line, err := r.GetBudgetLineRepository().GetForUpdate(ctx, doc.BudgetLineID)
	if err != nil {
		return nil, err
	}

	applied, err := r.GetBudgetLineRepository().MarkOperationApplied(ctx, doc.ID, op, line.ID(), amount)
	if err != nil {
		return nil, err
	}

	if !applied {
		log.Warn(ctx, "[LEDGER] operation already applied, skipping",
			log.String("documentId", doc.ID),
			log.String("operation", op))
		return line, nil
	}

	if err = mutateLine(line, op, amount); err != nil {
		srv.metrics.GetLedgerPrometheus().RecordRejection(op, rejectionReason(err))
		return nil, err
	}

	if err = r.GetBudgetLineRepository().Save(ctx, line); err != nil {
		return nil, err
	}

	srv.metrics.GetLedgerPrometheus().Record(op, amount)
	ev.addBalance(line, doc, op, amount, srv.clock.Now())

	return line, nil
}

func mutateLine(line *models.BudgetLine, op string, amount decimal.Decimal) error {
	switch op {
	case ledgerOpReserve:
		return line.Reserve(amount)
	case ledgerOpRelease:
		return line.Release(amount)
	case ledgerOpEngage:
		return line.Engage(amount)
	case ledgerOpEngageFromReservation:
		return line.EngageFromReservation(amount)
	case ledgerOpDisengage:
		return line.Disengage(amount)
	case ledgerOpDisengageToReservation:
		return line.DisengageToReservation(amount)
	case ledgerOpPay:
		return line.Pay(amount)
	case ledgerOpUnpay:
		return line.Unpay(amount)
	default:
		return common.ErrInvalidOperationType
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, common.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, common.ErrInsufficientReservation):
		return "insufficient_reservation"
	case errors.Is(err, common.ErrExceedsEngagedAmount):
		return "exceeds_engaged_amount"
	case errors.Is(err, common.ErrInvalidAmount):
		return "invalid_amount"
	default:
		return "other"
	}
}
