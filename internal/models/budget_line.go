package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/publibudget/go-commitment-engine/internal/common"
)

// BudgetLine holds the monetary state of a single budget appropriation line.
// Amount fields are unexported so every mutation goes through the guarded
// methods below; this is how the available-balance invariant is enforced.
type BudgetLine struct {
	id       string
	code     string
	libelle  string
	exercice int

	montantInitial decimal.Decimal
	montantModifie decimal.Decimal
	montantReserve decimal.Decimal
	montantEngage  decimal.Decimal
	montantPaye    decimal.Decimal

	version       int
	lastUpdatedAt time.Time

	skipAvailabilityCheck bool
}

func NewBudgetLine(id, code, libelle string, exercice int, montantInitial, montantModifie, montantReserve, montantEngage, montantPaye decimal.Decimal, options ...BudgetLineOption) BudgetLine {
	l := BudgetLine{
		id:             id,
		code:           code,
		libelle:        libelle,
		exercice:       exercice,
		montantInitial: montantInitial,
		montantModifie: montantModifie,
		montantReserve: montantReserve,
		montantEngage:  montantEngage,
		montantPaye:    montantPaye,
	}

	for _, option := range options {
		option(&l)
	}

	return l
}

// Disponible is the currently unconsumed balance of the line.
// Payments convert engaged amounts to paid, they do not reduce it further.
func (l *BudgetLine) Disponible() decimal.Decimal {
	return l.montantModifie.Sub(l.montantReserve).Sub(l.montantEngage)
}

// Reserve places a soft hold on the available balance.
func (l *BudgetLine) Reserve(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return common.ErrInvalidAmount
	}

	if !l.skipAvailabilityCheck && l.Disponible().LessThan(amount) {
		return common.ErrInsufficientBalance
	}

	l.montantReserve = l.montantReserve.Add(amount)

	return nil
}

// Release reverses a previous reservation.
func (l *BudgetLine) Release(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return common.ErrInvalidAmount
	}

	if !l.skipAvailabilityCheck && l.montantReserve.LessThan(amount) {
		return common.ErrInsufficientReservation
	}

	l.montantReserve = l.montantReserve.Sub(amount)

	return nil
}

// Engage commits the amount directly against the available balance.
func (l *BudgetLine) Engage(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return common.ErrInvalidAmount
	}

	if !l.skipAvailabilityCheck && l.Disponible().LessThan(amount) {
		return common.ErrInsufficientBalance
	}

	l.montantEngage = l.montantEngage.Add(amount)

	return nil
}

// EngageFromReservation converts an already reserved amount into a firm
// commitment. Disponible is unchanged: the reservation reduced it already.
func (l *BudgetLine) EngageFromReservation(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return common.ErrInvalidAmount
	}

	if !l.skipAvailabilityCheck && l.montantReserve.LessThan(amount) {
		return common.ErrInsufficientReservation
	}

	l.montantReserve = l.montantReserve.Sub(amount)
	l.montantEngage = l.montantEngage.Add(amount)

	return nil
}

// Disengage releases a firm commitment back to the available balance.
func (l *BudgetLine) Disengage(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return common.ErrInvalidAmount
	}

	if !l.skipAvailabilityCheck && l.montantEngage.LessThan(amount) {
		return common.ErrExceedsEngagedAmount
	}

	l.montantEngage = l.montantEngage.Sub(amount)

	return nil
}

// DisengageToReservation reverses EngageFromReservation: the amount returns
// to the reservation hold instead of the available balance.
func (l *BudgetLine) DisengageToReservation(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return common.ErrInvalidAmount
	}

	if !l.skipAvailabilityCheck && l.montantEngage.LessThan(amount) {
		return common.ErrExceedsEngagedAmount
	}

	l.montantEngage = l.montantEngage.Sub(amount)
	l.montantReserve = l.montantReserve.Add(amount)

	return nil
}

// Pay converts an engaged amount to paid. montantPaye never exceeds montantEngage.
func (l *BudgetLine) Pay(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return common.ErrInvalidAmount
	}

	if !l.skipAvailabilityCheck && l.montantPaye.Add(amount).GreaterThan(l.montantEngage) {
		return common.ErrExceedsEngagedAmount
	}

	l.montantPaye = l.montantPaye.Add(amount)

	return nil
}

// Unpay reverses a payment, typically on payment cancellation.
func (l *BudgetLine) Unpay(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return common.ErrInvalidAmount
	}

	if !l.skipAvailabilityCheck && l.montantPaye.LessThan(amount) {
		return common.ErrInvalidAmount
	}

	l.montantPaye = l.montantPaye.Sub(amount)

	return nil
}

// AmendTo applies a budget amendment by replacing montantModifie.
// Rejected when the new appropriation would leave disponible negative.
func (l *BudgetLine) AmendTo(newMontantModifie decimal.Decimal) error {
	if newMontantModifie.Sub(l.montantReserve).Sub(l.montantEngage).LessThan(decimal.Zero) {
		return common.ErrInsufficientBalance
	}

	l.montantModifie = newMontantModifie

	return nil
}

func (l *BudgetLine) ID() string {
	return l.id
}

func (l *BudgetLine) Code() string {
	return l.code
}

func (l *BudgetLine) Libelle() string {
	return l.libelle
}

func (l *BudgetLine) Exercice() int {
	return l.exercice
}

func (l *BudgetLine) MontantInitial() decimal.Decimal {
	return l.montantInitial
}

func (l *BudgetLine) MontantModifie() decimal.Decimal {
	return l.montantModifie
}

func (l *BudgetLine) MontantReserve() decimal.Decimal {
	return l.montantReserve
}

func (l *BudgetLine) MontantEngage() decimal.Decimal {
	return l.montantEngage
}

func (l *BudgetLine) MontantPaye() decimal.Decimal {
	return l.montantPaye
}

func (l *BudgetLine) Version() int {
	return l.version
}

func (l *BudgetLine) LastUpdatedAt() time.Time {
	return l.lastUpdatedAt
}

// budgetLineJSON is used to marshal/unmarshal BudgetLine to/from JSON
// this is needed because BudgetLine is a struct with unexported fields
// we use private fields to prevent direct access to the amounts
// so we can control every change through the BudgetLine methods
type budgetLineJSON struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Libelle        string          `json:"libelle"`
	Exercice       int             `json:"exercice"`
	MontantInitial Decimal         `json:"montantInitial"`
	MontantModifie Decimal         `json:"montantModifie"`
	MontantReserve Decimal         `json:"montantReserve"`
	MontantEngage  Decimal         `json:"montantEngage"`
	MontantPaye    Decimal         `json:"montantPaye"`
	Disponible     Decimal         `json:"disponible"`
	Version        int             `json:"version"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

func (l BudgetLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(budgetLineJSON{
		ID:             l.id,
		Code:           l.code,
		Libelle:        l.libelle,
		Exercice:       l.exercice,
		MontantInitial: NewDecimalFromExternal(l.montantInitial),
		MontantModifie: NewDecimalFromExternal(l.montantModifie),
		MontantReserve: NewDecimalFromExternal(l.montantReserve),
		MontantEngage:  NewDecimalFromExternal(l.montantEngage),
		MontantPaye:    NewDecimalFromExternal(l.montantPaye),
		Disponible:     NewDecimalFromExternal(l.Disponible()),
		Version:        l.version,
		LastUpdatedAt:  l.lastUpdatedAt,
	})
}
