package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/repositories"
)

type BudgetLineService interface {
	Create(ctx context.Context, in models.CreateBudgetLineIn) (*models.BudgetLine, error)
	Amend(ctx context.Context, id string, montantModifie decimal.Decimal) (*models.BudgetLine, error)
	Get(ctx context.Context, id string) (*models.BudgetLine, error)
	List(ctx context.Context, opts models.BudgetLineFilterOptions) ([]models.BudgetLine, error)
}

type budgetLine service

var _ BudgetLineService = (*budgetLine)(nil)

func (s *budgetLine) Create(ctx context.Context, in models.CreateBudgetLineIn) (*models.BudgetLine, error) {
	id := s.srv.idgenerator.Generate(idPrefixBudgetLine)
	return s.srv.sqlRepo.GetBudgetLineRepository().Create(ctx, id, in)
}

// Amend replaces montantModifie, rejected when the new appropriation would
// leave disponible negative.
func (s *budgetLine) Amend(ctx context.Context, id string, montantModifie decimal.Decimal) (res *models.BudgetLine, err error) {
	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		line, errAtomic := r.GetBudgetLineRepository().GetForUpdate(ctx, id)
		if errAtomic != nil {
			return errAtomic
		}

		if errAtomic = line.AmendTo(montantModifie); errAtomic != nil {
			return errAtomic
		}

		if errAtomic = r.GetBudgetLineRepository().Save(ctx, line); errAtomic != nil {
			return errAtomic
		}

		res = line
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *budgetLine) Get(ctx context.Context, id string) (*models.BudgetLine, error) {
	return s.srv.sqlRepo.GetBudgetLineRepository().Get(ctx, id)
}

func (s *budgetLine) List(ctx context.Context, opts models.BudgetLineFilterOptions) ([]models.BudgetLine, error) {
	return s.srv.sqlRepo.GetBudgetLineRepository().List(ctx, opts)
}
