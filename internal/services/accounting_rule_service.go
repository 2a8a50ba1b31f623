package services

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/repositories"
)

type AccountingRuleService interface {
	Create(ctx context.Context, in models.CreateAccountingRuleIn) (*models.AccountingRule, error)
	Get(ctx context.Context, id string) (*models.AccountingRule, error)
	List(ctx context.Context, opts models.RuleFilterOptions) ([]models.AccountingRule, error)
	Update(ctx context.Context, id string, in models.CreateAccountingRuleIn) (*models.AccountingRule, error)
	SetActive(ctx context.Context, id string, actif bool) error
}

type accountingRule service

var _ AccountingRuleService = (*accountingRule)(nil)

func (s *accountingRule) Create(ctx context.Context, in models.CreateAccountingRuleIn) (*models.AccountingRule, error) {
	if err := s.validateRuleIn(in); err != nil {
		return nil, err
	}

	id := s.srv.idgenerator.Generate(idPrefixRule)
	return s.srv.sqlRepo.GetRuleRepository().Create(ctx, id, in, s.srv.clock.Now())
}

func (s *accountingRule) Get(ctx context.Context, id string) (*models.AccountingRule, error) {
	return s.srv.sqlRepo.GetRuleRepository().Get(ctx, id)
}

func (s *accountingRule) List(ctx context.Context, opts models.RuleFilterOptions) ([]models.AccountingRule, error) {
	return s.srv.sqlRepo.GetRuleRepository().List(ctx, opts)
}

// Update rewrites a rule in place. A rule already referenced by a journal
// posting is immutable: it documents how postings were generated. Such rules
// can only be deactivated.
func (s *accountingRule) Update(ctx context.Context, id string, in models.CreateAccountingRuleIn) (res *models.AccountingRule, err error) {
	if err = s.validateRuleIn(in); err != nil {
		return nil, err
	}

	err = s.srv.atomically(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		rule, errAtomic := r.GetRuleRepository().Get(ctx, id)
		if errAtomic != nil {
			return errAtomic
		}

		referenced, errAtomic := r.GetRuleRepository().IsReferencedByPosting(ctx, rule.ID)
		if errAtomic != nil {
			return errAtomic
		}

		if referenced {
			return common.ErrRuleImmutable
		}

		if rule.TypeOperation != in.TypeOperation {
			return fmt.Errorf("%w: typeOperation cannot change", common.ErrValidation)
		}

		rule.Libelle = in.Libelle
		rule.Conditions = in.Conditions
		rule.CompteDebit = in.CompteDebit
		rule.CompteCredit = in.CompteCredit
		rule.Ordre = in.Ordre
		rule.Permanente = in.Permanente
		rule.DateDebut = in.DateDebut
		rule.DateFin = in.DateFin
		rule.UpdatedAt = s.srv.clock.Now()

		if errAtomic = r.GetRuleRepository().Update(ctx, rule); errAtomic != nil {
			return errAtomic
		}

		res = rule
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *accountingRule) SetActive(ctx context.Context, id string, actif bool) error {
	return s.srv.sqlRepo.GetRuleRepository().SetActive(ctx, id, actif, s.srv.clock.Now())
}

// validateRuleIn rejects operators that the declared field type does not
// allow, so the downgrade leniency of the matcher only ever has to cover
// field-type changes made after rule creation.
func (s *accountingRule) validateRuleIn(in models.CreateAccountingRuleIn) error {
	if !slices.Contains(models.AllOperationTypes, in.TypeOperation) {
		return common.ErrInvalidOperationType
	}

	if in.CompteDebit == "" || in.CompteCredit == "" {
		return fmt.Errorf("%w: debit and credit accounts are required", common.ErrValidation)
	}

	if !in.Permanente && in.DateDebut == nil && in.DateFin == nil {
		return fmt.Errorf("%w: a non-permanent rule needs a validity window", common.ErrValidation)
	}

	for _, cond := range in.Conditions {
		fieldType := s.srv.fieldTypes.FieldTypeFor(in.TypeOperation, cond.Champ)
		if !slices.Contains(models.AllowedOperators[fieldType], cond.Operateur) {
			return fmt.Errorf("%w: %s on %s field %q", common.ErrInvalidOperator, cond.Operateur, fieldType, cond.Champ)
		}
	}

	return nil
}
