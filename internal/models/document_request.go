package models

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/publibudget/go-commitment-engine/internal/common"
)

// CreateDocumentIn is the normalized input the stage services consume.
type CreateDocumentIn struct {
	Kind              OperationType
	BudgetLineID      string
	SourceKind        *SourceKind
	SourceID          *string
	FournisseurID     *string
	BeneficiaireLibre *string
	Objet             string
	Montant           decimal.Decimal
}

func parseMontant(raw string) (decimal.Decimal, error) {
	amount, err := common.NewDecimalFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unable to parse montant: %s", err.Error())
	}
	if amount == nil || amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, common.ErrInvalidAmount
	}
	return *amount, nil
}

type CreateReservationReq struct {
	BudgetLineID string `json:"budgetLineId" validate:"required"`
	Montant      string `json:"montant" validate:"required"`
	Objet        string `json:"objet" validate:"required,noStartEndSpaces"`
}

func (in *CreateReservationReq) TransformAndValidate() (out CreateDocumentIn, err error) {
	montant, err := parseMontant(in.Montant)
	if err != nil {
		return out, err
	}

	return CreateDocumentIn{
		Kind:         OperationReservation,
		BudgetLineID: in.BudgetLineID,
		Objet:        in.Objet,
		Montant:      montant,
	}, nil
}

type CreateEngagementReq struct {
	BudgetLineID      string  `json:"budgetLineId" validate:"required"`
	ReservationID     *string `json:"reservationId"`
	FournisseurID     *string `json:"fournisseurId"`
	BeneficiaireLibre *string `json:"beneficiaireLibre"`
	Montant           string  `json:"montant" validate:"required"`
	Objet             string  `json:"objet" validate:"required,noStartEndSpaces"`
}

func (in *CreateEngagementReq) TransformAndValidate() (out CreateDocumentIn, err error) {
	var errs *multierror.Error

	montant, err := parseMontant(in.Montant)
	if err != nil {
		errs = multierror.Append(errs, err)
	}

	if in.FournisseurID != nil && in.BeneficiaireLibre != nil {
		errs = multierror.Append(errs, common.ErrAmbiguousBeneficiary)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return out, err
	}

	out = CreateDocumentIn{
		Kind:              OperationEngagement,
		BudgetLineID:      in.BudgetLineID,
		FournisseurID:     in.FournisseurID,
		BeneficiaireLibre: in.BeneficiaireLibre,
		Objet:             in.Objet,
		Montant:           montant,
	}
	if in.ReservationID != nil {
		kind := SourceReservation
		out.SourceKind = &kind
		out.SourceID = in.ReservationID
	}

	return out, nil
}

type CreatePurchaseOrderReq struct {
	BudgetLineID  string  `json:"budgetLineId" validate:"required"`
	EngagementID  *string `json:"engagementId"`
	FournisseurID *string `json:"fournisseurId"`
	Montant       string  `json:"montant" validate:"required"`
	Objet         string  `json:"objet" validate:"required,noStartEndSpaces"`
}

func (in *CreatePurchaseOrderReq) TransformAndValidate() (out CreateDocumentIn, err error) {
	montant, err := parseMontant(in.Montant)
	if err != nil {
		return out, err
	}

	out = CreateDocumentIn{
		Kind:          OperationPurchaseOrder,
		BudgetLineID:  in.BudgetLineID,
		FournisseurID: in.FournisseurID,
		Objet:         in.Objet,
		Montant:       montant,
	}
	if in.EngagementID != nil {
		kind := SourceEngagement
		out.SourceKind = &kind
		out.SourceID = in.EngagementID
	}

	return out, nil
}

type CreateInvoiceReq struct {
	BudgetLineID      string  `json:"budgetLineId" validate:"required"`
	EngagementID      *string `json:"engagementId"`
	FournisseurID     *string `json:"fournisseurId"`
	BeneficiaireLibre *string `json:"beneficiaireLibre"`
	MontantTTC        string  `json:"montantTTC" validate:"required"`
	Objet             string  `json:"objet" validate:"required,noStartEndSpaces"`
}

func (in *CreateInvoiceReq) TransformAndValidate() (out CreateDocumentIn, err error) {
	var errs *multierror.Error

	montant, err := parseMontant(in.MontantTTC)
	if err != nil {
		errs = multierror.Append(errs, err)
	}

	if in.FournisseurID != nil && in.BeneficiaireLibre != nil {
		errs = multierror.Append(errs, common.ErrAmbiguousBeneficiary)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return out, err
	}

	out = CreateDocumentIn{
		Kind:              OperationInvoice,
		BudgetLineID:      in.BudgetLineID,
		FournisseurID:     in.FournisseurID,
		BeneficiaireLibre: in.BeneficiaireLibre,
		Objet:             in.Objet,
		Montant:           montant,
	}
	if in.EngagementID != nil {
		kind := SourceEngagement
		out.SourceKind = &kind
		out.SourceID = in.EngagementID
	}

	return out, nil
}

// CreateExpenseReq carries the four mutually exclusive imputation choices.
// Exactly one must be set; the same goes for the beneficiary pair.
type CreateExpenseReq struct {
	BudgetLineID      string  `json:"budgetLineId"`
	EngagementID      *string `json:"engagementId"`
	ReservationID     *string `json:"reservationId"`
	FactureID         *string `json:"factureId"`
	DirectLineID      *string `json:"directBudgetLineId"`
	FournisseurID     *string `json:"fournisseurId"`
	BeneficiaireLibre *string `json:"beneficiaireLibre"`
	Montant           string  `json:"montant" validate:"required"`
	Objet             string  `json:"objet" validate:"required,noStartEndSpaces"`
}

func (in *CreateExpenseReq) TransformAndValidate() (out CreateDocumentIn, err error) {
	var errs *multierror.Error

	montant, err := parseMontant(in.Montant)
	if err != nil {
		errs = multierror.Append(errs, err)
	}

	sourceKind, sourceID, imputationErr := in.imputation()
	if imputationErr != nil {
		errs = multierror.Append(errs, imputationErr)
	}

	switch {
	case in.FournisseurID != nil && in.BeneficiaireLibre != nil:
		errs = multierror.Append(errs, common.ErrAmbiguousBeneficiary)
	case in.FournisseurID == nil && in.BeneficiaireLibre == nil:
		errs = multierror.Append(errs, common.ErrMissingBeneficiary)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return out, err
	}

	return CreateDocumentIn{
		Kind:              OperationExpense,
		BudgetLineID:      in.BudgetLineID,
		SourceKind:        &sourceKind,
		SourceID:          &sourceID,
		FournisseurID:     in.FournisseurID,
		BeneficiaireLibre: in.BeneficiaireLibre,
		Objet:             in.Objet,
		Montant:           montant,
	}, nil
}

// imputation resolves the exactly-one-of-four upstream budgetary source.
func (in *CreateExpenseReq) imputation() (SourceKind, string, error) {
	type candidate struct {
		kind SourceKind
		id   *string
	}

	var picked []candidate
	for _, c := range []candidate{
		{SourceEngagement, in.EngagementID},
		{SourceReservation, in.ReservationID},
		{SourceInvoice, in.FactureID},
		{SourceBudgetLine, in.DirectLineID},
	} {
		if c.id != nil {
			picked = append(picked, c)
		}
	}

	switch len(picked) {
	case 0:
		return "", "", common.ErrMissingImputation
	case 1:
		return picked[0].kind, *picked[0].id, nil
	default:
		return "", "", common.ErrAmbiguousImputation
	}
}

type CreatePaymentReq struct {
	ExpenseID    string `json:"expenseId" validate:"required"`
	Montant      string `json:"montant" validate:"required"`
	ModePaiement string `json:"modePaiement" validate:"required"`
}

func (in *CreatePaymentReq) TransformAndValidate() (out CreateDocumentIn, err error) {
	montant, err := parseMontant(in.Montant)
	if err != nil {
		return out, err
	}

	kind := SourceExpense
	return CreateDocumentIn{
		Kind:       OperationPayment,
		SourceKind: &kind,
		SourceID:   &in.ExpenseID,
		Objet:      in.ModePaiement,
		Montant:    montant,
	}, nil
}
