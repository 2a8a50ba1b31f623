package services

import (
	"context"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/repositories"
)

type PaymentService interface {
	Create(ctx context.Context, in models.CreateDocumentIn) (*models.CommitmentDocument, error)
	Cancel(ctx context.Context, id string) (*models.CommitmentDocument, error)
}

type payment service

var _ PaymentService = (*payment)(nil)

// Create pays an ordonnanced expense. The amount is bounded by the expense's
// reste-a-payer and, when the expense settles an invoice, by the invoice's
// reste-a-payer as well. On the line the amount converts engaged to paid.
func (s *payment) Create(ctx context.Context, in models.CreateDocumentIn) (res *models.CommitmentDocument, err error) {
	var ev pendingEvents

	doc := s.srv.newDocument(in, s.srv.clock.Now())
	if doc.SourceKind == nil || doc.SourceID == nil {
		return nil, common.ErrMissingImputation
	}

	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		ev.reset()

		exp, errAtomic := getDocumentOfKind(ctx, r, *doc.SourceID, models.OperationExpense)
		if errAtomic != nil {
			return errAtomic
		}

		if exp.Statut != models.ExpenseStatusOrdonnancee {
			return common.ErrInvalidTransition
		}

		if doc.Montant.GreaterThan(exp.RemainingPayable()) {
			return common.ErrExceedsRemainingPayable
		}

		doc.BudgetLineID = exp.BudgetLineID

		// an expense settling an invoice also pays that invoice down
		var inv *models.CommitmentDocument
		if exp.SourceKind != nil && *exp.SourceKind == models.SourceInvoice {
			if inv, errAtomic = getDocumentOfKind(ctx, r, *exp.SourceID, models.OperationInvoice); errAtomic != nil {
				return errAtomic
			}

			if doc.Montant.GreaterThan(inv.RemainingPayable()) {
				return common.ErrExceedsRemainingPayable
			}
		}

		line, errAtomic := s.srv.applyLedgerOperation(ctx, r, doc, ledgerOpPay, doc.Montant, &ev)
		if errAtomic != nil {
			return errAtomic
		}

		now := s.srv.clock.Now()
		exp.MontantPaye = exp.MontantPaye.Add(doc.Montant)
		exp.LastUpdatedAt = now
		if exp.RemainingPayable().IsZero() {
			if errAtomic = exp.TransitionTo(models.ExpenseStatusPayee, now); errAtomic != nil {
				return errAtomic
			}
		}
		if errAtomic = r.GetDocumentRepository().Update(ctx, exp); errAtomic != nil {
			return errAtomic
		}

		if inv != nil {
			inv.MontantPaye = inv.MontantPaye.Add(doc.Montant)
			inv.LastUpdatedAt = now
			if inv.RemainingPayable().IsZero() {
				if errAtomic = inv.TransitionTo(models.InvoiceStatusPayee, now); errAtomic != nil {
					return errAtomic
				}
			}
			if errAtomic = r.GetDocumentRepository().Update(ctx, inv); errAtomic != nil {
				return errAtomic
			}
		}

		if errAtomic = r.GetDocumentRepository().Create(ctx, doc); errAtomic != nil {
			return errAtomic
		}

		return s.srv.postTransition(ctx, r, doc, line, doc.Montant, &ev)
	})
	if err != nil {
		return nil, err
	}

	s.srv.flushEvents(ctx, &ev)

	return doc, nil
}

// Cancel reverses a payment: the amount returns from paid to engaged and the
// parent expense's montantPaye is decremented. A fully paid expense reached
// its terminal status and can no longer be touched.
func (s *payment) Cancel(ctx context.Context, id string) (res *models.CommitmentDocument, err error) {
	var ev pendingEvents

	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		ev.reset()

		doc, errAtomic := getDocumentOfKind(ctx, r, id, models.OperationPayment)
		if errAtomic != nil {
			return errAtomic
		}

		if doc.SourceKind == nil || doc.SourceID == nil {
			return common.ErrMissingImputation
		}

		exp, errAtomic := getDocumentOfKind(ctx, r, *doc.SourceID, models.OperationExpense)
		if errAtomic != nil {
			return errAtomic
		}

		if models.IsTerminalStatus(exp.Kind, exp.Statut) {
			return common.ErrDocumentImmutable
		}

		if errAtomic = doc.TransitionTo(models.PaymentStatusAnnule, s.srv.clock.Now()); errAtomic != nil {
			return errAtomic
		}

		if _, errAtomic = s.srv.applyLedgerOperation(ctx, r, doc, ledgerOpUnpay, doc.Montant, &ev); errAtomic != nil {
			return errAtomic
		}

		now := s.srv.clock.Now()
		exp.MontantPaye = exp.MontantPaye.Sub(doc.Montant)
		exp.LastUpdatedAt = now
		if errAtomic = r.GetDocumentRepository().Update(ctx, exp); errAtomic != nil {
			return errAtomic
		}

		if exp.SourceKind != nil && *exp.SourceKind == models.SourceInvoice {
			inv, errInv := getDocumentOfKind(ctx, r, *exp.SourceID, models.OperationInvoice)
			if errInv != nil {
				return errInv
			}

			if models.IsTerminalStatus(inv.Kind, inv.Statut) {
				return common.ErrDocumentImmutable
			}

			inv.MontantPaye = inv.MontantPaye.Sub(doc.Montant)
			inv.LastUpdatedAt = now
			if errInv = r.GetDocumentRepository().Update(ctx, inv); errInv != nil {
				return errInv
			}
		}

		if errAtomic = r.GetDocumentRepository().Update(ctx, doc); errAtomic != nil {
			return errAtomic
		}

		if errAtomic = s.srv.reversePostings(ctx, r, doc, &ev); errAtomic != nil {
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
