package models

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/publibudget/go-commitment-engine/internal/common"
)

// Per-stage statuses. Transitions are one-directional, never skip an
// intermediate state, and terminal statuses reject all further mutation.
const (
	ReservationStatusActive  = "active"
	ReservationStatusEpuisee = "epuisee"
	ReservationStatusAnnulee = "annulee"

	EngagementStatusBrouillon = "brouillon"
	EngagementStatusValide    = "valide"
	EngagementStatusAnnule    = "annule"

	PurchaseOrderStatusBrouillon   = "brouillon"
	PurchaseOrderStatusValide      = "valide"
	PurchaseOrderStatusReceptionne = "receptionne"
	PurchaseOrderStatusAnnule      = "annule"

	InvoiceStatusBrouillon = "brouillon"
	InvoiceStatusValidee   = "validee"
	InvoiceStatusPayee     = "payee"
	InvoiceStatusAnnulee   = "annulee"

	ExpenseStatusBrouillon   = "brouillon"
	ExpenseStatusValidee     = "validee"
	ExpenseStatusOrdonnancee = "ordonnancee"
	ExpenseStatusPayee       = "payee"
	ExpenseStatusAnnule      = "annule"

	PaymentStatusActif  = "actif"
	PaymentStatusAnnule = "annule"
)

// InitialStatus is the draft status a freshly created document starts in.
// Drafts hold no budget consumption, except reservations and payments which
// consume on creation.
var InitialStatus = map[OperationType]string{
	OperationReservation:   ReservationStatusActive,
	OperationEngagement:    EngagementStatusBrouillon,
	OperationPurchaseOrder: PurchaseOrderStatusBrouillon,
	OperationInvoice:       InvoiceStatusBrouillon,
	OperationExpense:       ExpenseStatusBrouillon,
	OperationPayment:       PaymentStatusActif,
}

var documentTransitions = map[OperationType]map[string][]string{
	OperationReservation: {
		ReservationStatusActive: {ReservationStatusEpuisee, ReservationStatusAnnulee},
		// cancelling an engagement restores the reservation's remaining amount;
		// an exhausted reservation cannot be cancelled directly
		ReservationStatusEpuisee: {ReservationStatusActive},
	},
	OperationEngagement: {
		EngagementStatusBrouillon: {EngagementStatusValide, EngagementStatusAnnule},
		EngagementStatusValide:    {EngagementStatusAnnule},
	},
	OperationPurchaseOrder: {
		PurchaseOrderStatusBrouillon: {PurchaseOrderStatusValide, PurchaseOrderStatusAnnule},
		PurchaseOrderStatusValide:    {PurchaseOrderStatusReceptionne, PurchaseOrderStatusAnnule},
	},
	OperationInvoice: {
		InvoiceStatusBrouillon: {InvoiceStatusValidee, InvoiceStatusAnnulee},
		InvoiceStatusValidee:   {InvoiceStatusPayee, InvoiceStatusAnnulee},
	},
	OperationExpense: {
		ExpenseStatusBrouillon:   {ExpenseStatusValidee, ExpenseStatusAnnule},
		ExpenseStatusValidee:     {ExpenseStatusOrdonnancee, ExpenseStatusAnnule},
		ExpenseStatusOrdonnancee: {ExpenseStatusPayee},
	},
	OperationPayment: {
		PaymentStatusActif: {PaymentStatusAnnule},
	},
}

// IsTerminalStatus reports whether statut allows no further transition.
func IsTerminalStatus(kind OperationType, statut string) bool {
	return len(documentTransitions[kind][statut]) == 0
}

// TransitionTo moves the document to statut after checking the stage's
// transition table, stamping the matching timestamp.
func (d *CommitmentDocument) TransitionTo(statut string, at time.Time) error {
	allowed, ok := documentTransitions[d.Kind][d.Statut]
	if !ok {
		return common.ErrDocumentImmutable
	}

	if !slices.Contains(allowed, statut) {
		return common.ErrInvalidTransition
	}

	d.Statut = statut
	d.LastUpdatedAt = at

	switch statut {
	case EngagementStatusValide, InvoiceStatusValidee:
		d.ValidatedAt = &at
	case PurchaseOrderStatusReceptionne:
		d.ReceivedAt = &at
	case ExpenseStatusOrdonnancee:
		d.OrdonnanceAt = &at
	case ExpenseStatusPayee:
		d.PaidAt = &at
	case EngagementStatusAnnule, ReservationStatusAnnulee:
		d.CancelledAt = &at
	}

	return nil
}
