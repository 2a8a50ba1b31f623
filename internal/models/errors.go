package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

// MapErrors maps "<field>_<tag>" validation failures to stable error codes
// surfaced by the API.
var MapErrors = MapErrs{
	"budgetLineId_required":   {Code: "BUDGET_LINE_REQUIRED", ErrorMessage: errors.New("budget line id is required")},
	"montant_required":        {Code: "MONTANT_REQUIRED", ErrorMessage: errors.New("montant is required")},
	"montantTTC_required":     {Code: "MONTANT_REQUIRED", ErrorMessage: errors.New("montantTTC is required")},
	"montantInitial_required": {Code: "MONTANT_REQUIRED", ErrorMessage: errors.New("montantInitial is required")},
	"montantModifie_required": {Code: "MONTANT_REQUIRED", ErrorMessage: errors.New("montantModifie is required")},
	"objet_required":          {Code: "OBJET_REQUIRED", ErrorMessage: errors.New("objet is required")},
	"expenseId_required":      {Code: "EXPENSE_REQUIRED", ErrorMessage: errors.New("expense id is required")},
	"modePaiement_required":   {Code: "MODE_PAIEMENT_REQUIRED", ErrorMessage: errors.New("mode paiement is required")},
	"code_required":           {Code: "CODE_REQUIRED", ErrorMessage: errors.New("code is required")},
	"libelle_required":        {Code: "LIBELLE_REQUIRED", ErrorMessage: errors.New("libelle is required")},
	"exercice_required":       {Code: "EXERCICE_REQUIRED", ErrorMessage: errors.New("exercice is required")},
	"typeOperation_required":  {Code: "TYPE_OPERATION_REQUIRED", ErrorMessage: errors.New("type operation is required")},
	"typeOperation_operationType": {Code: "TYPE_OPERATION_INVALID", ErrorMessage: errors.New("type operation is not a known operation")},
	"ordre_required":          {Code: "ORDRE_REQUIRED", ErrorMessage: errors.New("ordre is required")},
	"actif_required":          {Code: "ACTIF_REQUIRED", ErrorMessage: errors.New("actif is required")},
	"compteDebit_required":    {Code: "COMPTE_REQUIRED", ErrorMessage: errors.New("compte debit is required")},
	"compteCredit_required":   {Code: "COMPTE_REQUIRED", ErrorMessage: errors.New("compte credit is required")},
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}
