package models

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/publibudget/go-commitment-engine/internal/common"
)

type CreateBudgetLineReq struct {
	Code           string `json:"code" validate:"required,noStartEndSpaces"`
	Libelle        string `json:"libelle" validate:"required,noStartEndSpaces"`
	Exercice       int    `json:"exercice" validate:"required"`
	MontantInitial string `json:"montantInitial" validate:"required"`
}

type CreateBudgetLineIn struct {
	Code           string
	Libelle        string
	Exercice       int
	MontantInitial decimal.Decimal
}

func (in *CreateBudgetLineReq) TransformAndValidate() (out CreateBudgetLineIn, err error) {
	var errs *multierror.Error

	montantInitial, err := common.NewDecimalFromString(in.MontantInitial)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("unable to parse montantInitial: %s", err.Error()))
	} else if montantInitial.LessThan(decimal.Zero) {
		errs = multierror.Append(errs, fmt.Errorf("montantInitial must be greater or equal than 0"))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return out, err
	}

	return CreateBudgetLineIn{
		Code:           in.Code,
		Libelle:        in.Libelle,
		Exercice:       in.Exercice,
		MontantInitial: *montantInitial,
	}, nil
}

type AmendBudgetLineReq struct {
	MontantModifie string `json:"montantModifie" validate:"required"`
}

type BudgetLineFilterOptions struct {
	Exercice int
	Code     string
	Limit    int
}
