package services

import (
	"context"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/repositories"
)

type EngagementService interface {
	Create(ctx context.Context, in models.CreateDocumentIn) (*models.CommitmentDocument, error)
	Validate(ctx context.Context, id string) (*models.CommitmentDocument, error)
	Cancel(ctx context.Context, id string) (*models.CommitmentDocument, error)
}

type engagement service

var _ EngagementService = (*engagement)(nil)

// Create stores the engagement as a draft. Drafts hold no budget.
func (s *engagement) Create(ctx context.Context, in models.CreateDocumentIn) (*models.CommitmentDocument, error) {
	doc := s.srv.newDocument(in, s.srv.clock.Now())

	if in.SourceID != nil {
		// the reservation must exist and belong to the same line
		src, err := s.srv.sqlRepo.GetDocumentRepository().Get(ctx, *in.SourceID)
		if err != nil {
			return nil, err
		}
		if src.Kind != models.OperationReservation || src.BudgetLineID != doc.BudgetLineID {
			return nil, common.ErrDocumentNotFound
		}
	}

	if err := s.srv.sqlRepo.GetDocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Validate makes the commitment firm. Sourced from a reservation the amount
// converts the reservation's hold; otherwise it draws on disponible directly.
func (s *engagement) Validate(ctx context.Context, id string) (res *models.CommitmentDocument, err error) {
	var ev pendingEvents

	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		ev.reset()

		doc, errAtomic := getDocumentOfKind(ctx, r, id, models.OperationEngagement)
		if errAtomic != nil {
			return errAtomic
		}

		if errAtomic = doc.TransitionTo(models.EngagementStatusValide, s.srv.clock.Now()); errAtomic != nil {
			return errAtomic
		}

		ledgerOp := ledgerOpEngage
		if doc.SourceKind != nil && *doc.SourceKind == models.SourceReservation {
			ledgerOp = ledgerOpEngageFromReservation

			src, errSrc := getDocumentOfKind(ctx, r, *doc.SourceID, models.OperationReservation)
			if errSrc != nil {
				return errSrc
			}

			remaining, errSrc := remainingOf(ctx, r, src)
			if errSrc != nil {
				return errSrc
			}

			// the engagement is still a draft here, so remaining does not
			// count it yet
			if remaining.LessThan(doc.Montant) {
				return common.ErrInsufficientReservation
			}

			if remaining.Equal(doc.Montant) {
				if errSrc = src.TransitionTo(models.ReservationStatusEpuisee, s.srv.clock.Now()); errSrc != nil {
					return errSrc
				}
				if errSrc = r.GetDocumentRepository().Update(ctx, src); errSrc != nil {
					return errSrc
				}
			}
		}

		line, errAtomic := s.srv.applyLedgerOperation(ctx, r, doc, ledgerOp, doc.Montant, &ev)
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

// Cancel releases the engagement's budget. An amount drawn from a
// reservation returns to the reservation hold, reactivating it when it was
// exhausted; a direct engagement, or one whose reservation has since been
// cancelled, returns to disponible.
func (s *engagement) Cancel(ctx context.Context, id string) (res *models.CommitmentDocument, err error) {
	var ev pendingEvents

	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		ev.reset()

		doc, errAtomic := getDocumentOfKind(ctx, r, id, models.OperationEngagement)
		if errAtomic != nil {
			return errAtomic
		}

		wasValide := doc.Statut == models.EngagementStatusValide

		if errAtomic = doc.TransitionTo(models.EngagementStatusAnnule, s.srv.clock.Now()); errAtomic != nil {
			return errAtomic
		}

		if wasValide {
			ledgerOp := ledgerOpDisengage
			if doc.SourceKind != nil && *doc.SourceKind == models.SourceReservation {
				src, errSrc := getDocumentOfKind(ctx, r, *doc.SourceID, models.OperationReservation)
				if errSrc != nil {
					return errSrc
				}

				// a cancelled reservation takes no amount back
				if src.Statut != models.ReservationStatusAnnulee {
					ledgerOp = ledgerOpDisengageToReservation

					if src.Statut == models.ReservationStatusEpuisee {
						if errSrc = src.TransitionTo(models.ReservationStatusActive, s.srv.clock.Now()); errSrc != nil {
							return errSrc
						}
						if errSrc = r.GetDocumentRepository().Update(ctx, src); errSrc != nil {
							return errSrc
						}
					}
				}
			}

			if _, errAtomic = s.srv.applyLedgerOperation(ctx, r, doc, ledgerOp, doc.Montant, &ev); errAtomic != nil {
				return errAtomic
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
