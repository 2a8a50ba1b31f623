package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/publibudget/go-commitment-engine/internal/common"
)

// OperationType identifies the stage of the commitment chain a document
// belongs to. It is also the key used to select accounting rules.
type OperationType string

func (t OperationType) String() string {
	return string(t)
}

const (
	OperationReservation   OperationType = "reservation"
	OperationEngagement    OperationType = "engagement"
	OperationPurchaseOrder OperationType = "bon_commande"
	OperationInvoice       OperationType = "facture"
	OperationExpense       OperationType = "depense"
	OperationPayment       OperationType = "paiement"
)

var AllOperationTypes = []OperationType{
	OperationReservation,
	OperationEngagement,
	OperationPurchaseOrder,
	OperationInvoice,
	OperationExpense,
	OperationPayment,
}

// SourceKind discriminates the upstream budgetary source a document consumes.
// The cross-stage references form a DAG, never a cycle.
type SourceKind string

const (
	SourceBudgetLine  SourceKind = "budget_line"
	SourceReservation SourceKind = "reservation"
	SourceEngagement  SourceKind = "engagement"
	SourceInvoice     SourceKind = "facture"
	SourceExpense     SourceKind = "depense"
)

// CommitmentDocument is the persisted variant shared by all six stages.
// Kind selects the stage; the stage services own which fields are meaningful.
type CommitmentDocument struct {
	ID           string
	Kind         OperationType
	BudgetLineID string

	// SourceKind/SourceID reference the predecessor document, when any.
	SourceKind *SourceKind
	SourceID   *string

	// Exactly one of FournisseurID (registered supplier) and
	// BeneficiaireLibre (free-text payee) may be set.
	FournisseurID     *string
	BeneficiaireLibre *string

	Objet   string
	Montant decimal.Decimal

	// MontantPaye tracks cumulative payments for factures and depenses.
	MontantPaye decimal.Decimal

	Statut string

	CreatedAt     time.Time
	ValidatedAt   *time.Time
	ReceivedAt    *time.Time
	OrdonnanceAt  *time.Time
	PaidAt        *time.Time
	CancelledAt   *time.Time
	LastUpdatedAt time.Time

	Version int
}

// HasBeneficiary reports whether the document carries a beneficiary at all.
func (d *CommitmentDocument) HasBeneficiary() bool {
	return d.FournisseurID != nil || d.BeneficiaireLibre != nil
}

// ValidateBeneficiary enforces the supplier-or-free-text exclusivity.
func (d *CommitmentDocument) ValidateBeneficiary() error {
	if d.FournisseurID != nil && d.BeneficiaireLibre != nil {
		return common.ErrAmbiguousBeneficiary
	}
	if !d.HasBeneficiary() {
		return common.ErrMissingBeneficiary
	}
	return nil
}

// RemainingPayable is montant - montantPaye, used by factures and depenses.
func (d *CommitmentDocument) RemainingPayable() decimal.Decimal {
	return d.Montant.Sub(d.MontantPaye)
}

// Facts exposes the document as a fact set for accounting-rule matching.
func (d *CommitmentDocument) Facts() Facts {
	facts := Facts{
		FactMontant: NumberValue(d.Montant),
		FactObjet:   TextValue(d.Objet),
	}

	if d.SourceKind != nil {
		facts[FactSourceFinancement] = TextValue(string(*d.SourceKind))
	}

	if d.HasBeneficiary() {
		facts[FactFournisseurEnregistre] = BoolValue(d.FournisseurID != nil)
	}

	// payments store their payment mode in objet
	if d.Kind == OperationPayment {
		facts[FactModePaiement] = TextValue(d.Objet)
	}

	return facts
}

type DocumentFilterOptions struct {
	Kind         OperationType
	BudgetLineID string
	Statut       string
	SourceID     string
	Limit        int
}

type DocumentOut struct {
	ID                string         `json:"id"`
	Kind              OperationType  `json:"kind"`
	BudgetLineID      string         `json:"budgetLineId"`
	SourceKind        *SourceKind    `json:"sourceKind,omitempty"`
	SourceID          *string        `json:"sourceId,omitempty"`
	FournisseurID     *string        `json:"fournisseurId,omitempty"`
	BeneficiaireLibre *string        `json:"beneficiaireLibre,omitempty"`
	Objet             string         `json:"objet"`
	Montant           Decimal        `json:"montant"`
	MontantPaye       Decimal        `json:"montantPaye"`
	Statut            string         `json:"statut"`
	CreatedAt         time.Time      `json:"createdAt"`
	ValidatedAt       *time.Time     `json:"validatedAt,omitempty"`
	CancelledAt       *time.Time     `json:"cancelledAt,omitempty"`
}

// ToDocumentOut converts the document to its API representation.
func (d *CommitmentDocument) ToDocumentOut() DocumentOut {
	return DocumentOut{
		ID:                d.ID,
		Kind:              d.Kind,
		BudgetLineID:      d.BudgetLineID,
		SourceKind:        d.SourceKind,
		SourceID:          d.SourceID,
		FournisseurID:     d.FournisseurID,
		BeneficiaireLibre: d.BeneficiaireLibre,
		Objet:             d.Objet,
		Montant:           NewDecimalFromExternal(d.Montant),
		MontantPaye:       NewDecimalFromExternal(d.MontantPaye),
		Statut:            d.Statut,
		CreatedAt:         d.CreatedAt,
		ValidatedAt:       d.ValidatedAt,
		CancelledAt:       d.CancelledAt,
	}
}
