package models

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/publibudget/go-commitment-engine/internal/common"
)

type CreateAccountingRuleReq struct {
	TypeOperation string     `json:"typeOperation" validate:"required,operationType"`
	Libelle       string     `json:"libelle" validate:"required,noStartEndSpaces"`
	Conditions    Conditions `json:"conditions"`
	CompteDebit   string     `json:"compteDebit" validate:"required"`
	CompteCredit  string     `json:"compteCredit" validate:"required"`
	Ordre         int        `json:"ordre" validate:"required"`
	Permanente    bool       `json:"permanente"`
	DateDebut     string     `json:"dateDebut" validate:"omitempty,date"`
	DateFin       string     `json:"dateFin" validate:"omitempty,date"`
}

func (in *CreateAccountingRuleReq) TransformAndValidate() (out CreateAccountingRuleIn, err error) {
	var errs *multierror.Error

	dateDebut, err := parseRuleDate(in.DateDebut)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("unable to parse dateDebut: %s", err.Error()))
	}

	dateFin, err := parseRuleDate(in.DateFin)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("unable to parse dateFin: %s", err.Error()))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return out, err
	}

	return CreateAccountingRuleIn{
		TypeOperation: OperationType(in.TypeOperation),
		Libelle:       in.Libelle,
		Conditions:    in.Conditions,
		CompteDebit:   in.CompteDebit,
		CompteCredit:  in.CompteCredit,
		Ordre:         in.Ordre,
		Permanente:    in.Permanente,
		DateDebut:     dateDebut,
		DateFin:       dateFin,
	}, nil
}

func parseRuleDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(common.DateFormatYYYYMMDD, raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

type SetRuleActiveReq struct {
	Actif *bool `json:"actif" validate:"required"`
}
