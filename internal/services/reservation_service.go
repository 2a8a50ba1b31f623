package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/repositories"
)

type ReservationService interface {
	Create(ctx context.Context, in models.CreateDocumentIn) (*models.CommitmentDocument, error)
	Cancel(ctx context.Context, id string) (*models.CommitmentDocument, error)
}

type reservation service

var _ ReservationService = (*reservation)(nil)

// Create reserves budget immediately: a reservation has no draft state, it
// consumes disponible the moment it exists.
func (s *reservation) Create(ctx context.Context, in models.CreateDocumentIn) (res *models.CommitmentDocument, err error) {
	var ev pendingEvents

	doc := s.srv.newDocument(in, s.srv.clock.Now())
	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		ev.reset()

		line, errAtomic := s.srv.applyLedgerOperation(ctx, r, doc, ledgerOpReserve, doc.Montant, &ev)
		if errAtomic != nil {
			return errAtomic
		}

		if errAtomic := r.GetDocumentRepository().Create(ctx, doc); errAtomic != nil {
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

// Cancel releases the reservation's unengaged remainder back to the line.
// Engagements already drawn on the reservation keep their consumption.
func (s *reservation) Cancel(ctx context.Context, id string) (res *models.CommitmentDocument, err error) {
	var ev pendingEvents

	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		ev.reset()

		doc, errAtomic := getDocumentOfKind(ctx, r, id, models.OperationReservation)
		if errAtomic != nil {
			return errAtomic
		}

		consumed, errAtomic := r.GetDocumentRepository().SumSourceConsumption(ctx, models.SourceReservation, doc.ID)
		if errAtomic != nil {
			return errAtomic
		}

		if errAtomic = doc.TransitionTo(models.ReservationStatusAnnulee, s.srv.clock.Now()); errAtomic != nil {
			return errAtomic
		}

		if remaining := doc.Montant.Sub(consumed); remaining.GreaterThan(decimal.Zero) {
			if _, errAtomic = s.srv.applyLedgerOperation(ctx, r, doc, ledgerOpRelease, remaining, &ev); errAtomic != nil {
				return errAtomic
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

// remainingOf computes a reservation's remaining-to-engage amount.
func remainingOf(ctx context.Context, r repositories.SQLRepository, res *models.CommitmentDocument) (decimal.Decimal, error) {
	consumed, err := r.GetDocumentRepository().SumSourceConsumption(ctx, models.SourceReservation, res.ID)
	if err != nil {
		return decimal.Zero, err
	}

	return res.Montant.Sub(consumed), nil
}
