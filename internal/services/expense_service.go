package services

import (
	"context"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/repositories"
)

type ExpenseService interface {
	Create(ctx context.Context, in models.CreateDocumentIn) (*models.CommitmentDocument, error)
	Validate(ctx context.Context, id string) (*models.CommitmentDocument, error)
	Ordonnance(ctx context.Context, id string) (*models.CommitmentDocument, error)
	Cancel(ctx context.Context, id string) (*models.CommitmentDocument, error)
}

type expense service

var _ ExpenseService = (*expense)(nil)

// sourceKindToOperation maps an expense imputation to the stage the source
// document must belong to. A budget_line imputation references no document.
var sourceKindToOperation = map[models.SourceKind]models.OperationType{
	models.SourceReservation: models.OperationReservation,
	models.SourceEngagement:  models.OperationEngagement,
	models.SourceInvoice:     models.OperationInvoice,
}

// Create stores the expense as a draft after checking its single imputation
// and single beneficiary.
func (s *expense) Create(ctx context.Context, in models.CreateDocumentIn) (*models.CommitmentDocument, error) {
	doc := s.srv.newDocument(in, s.srv.clock.Now())

	if err := doc.ValidateBeneficiary(); err != nil {
		return nil, err
	}

	if doc.SourceKind == nil || doc.SourceID == nil {
		return nil, common.ErrMissingImputation
	}

	if kind, ok := sourceKindToOperation[*doc.SourceKind]; ok {
		src, err := s.srv.sqlRepo.GetDocumentRepository().Get(ctx, *doc.SourceID)
		if err != nil {
			return nil, err
		}
		if src.Kind != kind {
			return nil, common.ErrDocumentNotFound
		}
		if doc.BudgetLineID == "" {
			doc.BudgetLineID = src.BudgetLineID
		}
		if doc.BudgetLineID != src.BudgetLineID {
			return nil, common.ErrDocumentNotFound
		}
	} else {
		// direct imputation on a budget line
		doc.BudgetLineID = *doc.SourceID
	}

	if err := s.srv.sqlRepo.GetDocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Validate commits the expense against its imputation. A direct line or
// reservation imputation consumes budget here; an engagement or invoice
// imputation was already committed upstream and only needs a coverage check.
func (s *expense) Validate(ctx context.Context, id string) (res *models.CommitmentDocument, err error) {
	var ev pendingEvents

	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		ev.reset()

		doc, errAtomic := getDocumentOfKind(ctx, r, id, models.OperationExpense)
		if errAtomic != nil {
			return errAtomic
		}

		if errAtomic = doc.TransitionTo(models.ExpenseStatusValidee, s.srv.clock.Now()); errAtomic != nil {
			return errAtomic
		}

		line, errAtomic := s.applyImputation(ctx, r, doc, &ev)
		if errAtomic != nil {
			return errAtomic
		}

		if errAtomic = r.GetDocumentRepository().Update(ctx, doc); errAtomic != nil {
			return errAtomic
		}

		if errAtomic = s.srv.postTransition(ctx, r, doc, line, doc.Montant, &ev); errAtomic != nil {
			return errAtomic
		}

		res = doc
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.srv.flushEvents(ctx, &ev)

	return res, nil
}

// applyImputation consumes budget according to the expense's source. It
// returns the budget line when the imputation touched it, nil otherwise.
func (s *expense) applyImputation(ctx context.Context, r repositories.SQLRepository, doc *models.CommitmentDocument, ev *pendingEvents) (*models.BudgetLine, error) {
	switch *doc.SourceKind {
	case models.SourceBudgetLine:
		return s.srv.applyLedgerOperation(ctx, r, doc, ledgerOpEngage, doc.Montant, ev)

	case models.SourceReservation:
		src, err := getDocumentOfKind(ctx, r, *doc.SourceID, models.OperationReservation)
		if err != nil {
			return nil, err
		}

		remaining, err := remainingOf(ctx, r, src)
		if err != nil {
			return nil, err
		}

		if remaining.LessThan(doc.Montant) {
			return nil, common.ErrInsufficientReservation
		}

		if remaining.Equal(doc.Montant) {
			if err = src.TransitionTo(models.ReservationStatusEpuisee, s.srv.clock.Now()); err != nil {
				return nil, err
			}
			if err = r.GetDocumentRepository().Update(ctx, src); err != nil {
				return nil, err
			}
		}

		return s.srv.applyLedgerOperation(ctx, r, doc, ledgerOpEngageFromReservation, doc.Montant, ev)

	case models.SourceEngagement, models.SourceInvoice:
		src, err := getDocumentOfKind(ctx, r, *doc.SourceID, sourceKindToOperation[*doc.SourceKind])
		if err != nil {
			return nil, err
		}

		if models.IsTerminalStatus(src.Kind, src.Statut) {
			return nil, common.ErrDocumentImmutable
		}

		consumed, err := r.GetDocumentRepository().SumSourceConsumption(ctx, *doc.SourceKind, src.ID)
		if err != nil {
			return nil, err
		}

		// consumed does not count this expense yet: its transition to
		// validee is persisted later in the same transaction
		if consumed.Add(doc.Montant).GreaterThan(src.Montant) {
			return nil, common.ErrInsufficientBalance
		}

		return nil, nil

	default:
		return nil, common.ErrMissingImputation
	}
}

// Ordonnance authorizes the expense for payment. No budget movement.
func (s *expense) Ordonnance(ctx context.Context, id string) (res *models.CommitmentDocument, err error) {
	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		doc, errAtomic := getDocumentOfKind(ctx, r, id, models.OperationExpense)
		if errAtomic != nil {
			return errAtomic
		}

		if errAtomic = doc.TransitionTo(models.ExpenseStatusOrdonnancee, s.srv.clock.Now()); errAtomic != nil {
			return errAtomic
		}

		if errAtomic = r.GetDocumentRepository().Update(ctx, doc); errAtomic != nil {
			return errAtomic
		}

		res = doc
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Cancel is permitted from brouillon and validee only. A validated expense
// returns whatever budget it consumed on validation.
func (s *expense) Cancel(ctx context.Context, id string) (res *models.CommitmentDocument, err error) {
	var ev pendingEvents

	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		ev.reset()

		doc, errAtomic := getDocumentOfKind(ctx, r, id, models.OperationExpense)
		if errAtomic != nil {
			return errAtomic
		}

		wasValidee := doc.Statut == models.ExpenseStatusValidee

		if errAtomic = doc.TransitionTo(models.ExpenseStatusAnnule, s.srv.clock.Now()); errAtomic != nil {
			return errAtomic
		}

		if wasValidee {
			switch *doc.SourceKind {
			case models.SourceBudgetLine:
				if _, errAtomic = s.srv.applyLedgerOperation(ctx, r, doc, ledgerOpDisengage, doc.Montant, &ev); errAtomic != nil {
					return errAtomic
				}
			case models.SourceReservation:
				src, errSrc := getDocumentOfKind(ctx, r, *doc.SourceID, models.OperationReservation)
				if errSrc != nil {
					return errSrc
				}

				// a cancelled reservation takes no amount back
				ledgerOp := ledgerOpDisengageToReservation
				if src.Statut == models.ReservationStatusAnnulee {
					ledgerOp = ledgerOpDisengage
				}
				if src.Statut == models.ReservationStatusEpuisee {
					if errSrc = src.TransitionTo(models.ReservationStatusActive, s.srv.clock.Now()); errSrc != nil {
						return errSrc
					}
					if errSrc = r.GetDocumentRepository().Update(ctx, src); errSrc != nil {
						return errSrc
					}
				}
				if _, errAtomic = s.srv.applyLedgerOperation(ctx, r, doc, ledgerOp, doc.Montant, &ev); errAtomic != nil {
					return errAtomic
				}
			}

			if errAtomic = s.srv.reversePostings(ctx, r, doc, &ev); errAtomic != nil {
				return errAtomic
			}
		}

		if errAtomic = r.GetDocumentRepository().Update(ctx, doc); errAtomic != nil {
			return errAtomic
		}

		res = doc
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.srv.flushEvents(ctx, &ev)

	return res, nil
}
