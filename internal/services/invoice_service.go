package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/repositories"
)

type InvoiceService interface {
	Create(ctx context.Context, in models.CreateDocumentIn) (*models.CommitmentDocument, error)
	Validate(ctx context.Context, id string) (*models.CommitmentDocument, error)
	Cancel(ctx context.Context, id string) (*models.CommitmentDocument, error)
}

type invoice service

var _ InvoiceService = (*invoice)(nil)

func (s *invoice) Create(ctx context.Context, in models.CreateDocumentIn) (*models.CommitmentDocument, error) {
	doc := s.srv.newDocument(in, s.srv.clock.Now())

	if err := doc.ValidateBeneficiary(); err != nil {
		return nil, err
	}

	if in.SourceID != nil {
		src, err := s.srv.sqlRepo.GetDocumentRepository().Get(ctx, *in.SourceID)
		if err != nil {
			return nil, err
		}
		if src.Kind != models.OperationEngagement || src.BudgetLineID != doc.BudgetLineID {
			return nil, common.ErrDocumentNotFound
		}
	}

	if err := s.srv.sqlRepo.GetDocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *invoice) Validate(ctx context.Context, id string) (res *models.CommitmentDocument, err error) {
	var ev pendingEvents

	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		ev.reset()

		doc, errAtomic := getDocumentOfKind(ctx, r, id, models.OperationInvoice)
		if errAtomic != nil {
			return errAtomic
		}

		if errAtomic = doc.TransitionTo(models.InvoiceStatusValidee, s.srv.clock.Now()); errAtomic != nil {
			return errAtomic
		}

		if errAtomic = r.GetDocumentRepository().Update(ctx, doc); errAtomic != nil {
			return errAtomic
		}

		if errAtomic = s.srv.postTransition(ctx, r, doc, nil, doc.Montant, &ev); errAtomic != nil {
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

// Cancel rejects partially paid invoices: payments must be cancelled first.
func (s *invoice) Cancel(ctx context.Context, id string) (res *models.CommitmentDocument, err error) {
	var ev pendingEvents

	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		ev.reset()

		doc, errAtomic := getDocumentOfKind(ctx, r, id, models.OperationInvoice)
		if errAtomic != nil {
			return errAtomic
		}

		if doc.MontantPaye.GreaterThan(decimal.Zero) {
			return common.ErrDocumentImmutable
		}

		if errAtomic = doc.TransitionTo(models.InvoiceStatusAnnulee, s.srv.clock.Now()); errAtomic != nil {
			return errAtomic
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
