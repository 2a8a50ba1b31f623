package services

import (
	"context"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/repositories"
)

// Purchase orders follow a validated engagement. They carry no budget impact
// of their own: the engagement already committed the amount.
type PurchaseOrderService interface {
	Create(ctx context.Context, in models.CreateDocumentIn) (*models.CommitmentDocument, error)
	Validate(ctx context.Context, id string) (*models.CommitmentDocument, error)
	Receive(ctx context.Context, id string) (*models.CommitmentDocument, error)
	Cancel(ctx context.Context, id string) (*models.CommitmentDocument, error)
}

type purchaseOrder service

var _ PurchaseOrderService = (*purchaseOrder)(nil)

func (s *purchaseOrder) Create(ctx context.Context, in models.CreateDocumentIn) (*models.CommitmentDocument, error) {
	doc := s.srv.newDocument(in, s.srv.clock.Now())

	if in.SourceID != nil {
		src, err := s.srv.sqlRepo.GetDocumentRepository().Get(ctx, *in.SourceID)
		if err != nil {
			return nil, err
		}
		if src.Kind != models.OperationEngagement || src.BudgetLineID != doc.BudgetLineID {
			return nil, common.ErrDocumentNotFound
		}
		if src.Statut != models.EngagementStatusValide {
			return nil, common.ErrInvalidTransition
		}
	}

	if err := s.srv.sqlRepo.GetDocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *purchaseOrder) Validate(ctx context.Context, id string) (*models.CommitmentDocument, error) {
	return s.transition(ctx, id, models.PurchaseOrderStatusValide, true)
}

func (s *purchaseOrder) Receive(ctx context.Context, id string) (*models.CommitmentDocument, error) {
	return s.transition(ctx, id, models.PurchaseOrderStatusReceptionne, false)
}

func (s *purchaseOrder) Cancel(ctx context.Context, id string) (res *models.CommitmentDocument, err error) {
	var ev pendingEvents

	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		ev.reset()

		doc, errAtomic := getDocumentOfKind(ctx, r, id, models.OperationPurchaseOrder)
		if errAtomic != nil {
			return errAtomic
		}

		if errAtomic = doc.TransitionTo(models.PurchaseOrderStatusAnnule, s.srv.clock.Now()); errAtomic != nil {
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

func (s *purchaseOrder) transition(ctx context.Context, id string, statut string, withPosting bool) (res *models.CommitmentDocument, err error) {
	var ev pendingEvents

	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		ev.reset()

		doc, errAtomic := getDocumentOfKind(ctx, r, id, models.OperationPurchaseOrder)
		if errAtomic != nil {
			return errAtomic
		}

		if errAtomic = doc.TransitionTo(statut, s.srv.clock.Now()); errAtomic != nil {
			return errAtomic
		}

		if errAtomic = r.GetDocumentRepository().Update(ctx, doc); errAtomic != nil {
			return errAtomic
		}

		if withPosting {
			if errAtomic = s.srv.postTransition(ctx, r, doc, nil, doc.Montant, &ev); errAtomic != nil {
				return errAtomic
			}
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
