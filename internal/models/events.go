package models

import (
	"time"
)

// Events published to the reporting/audit sink. The core never blocks on the
// sink; publishing failures are logged and dropped.

const (
	EventKindBalanceChanged = "budgetLineBalanceChanged"
	EventKindPostingCreated = "journalPostingCreated"
)

type BalanceChangedEvent struct {
	Kind         string    `json:"kind"`
	BudgetLineID string    `json:"budgetLineId"`
	DocumentID   string    `json:"documentId"`
	Operation    string    `json:"operation"`
	Montant      Decimal   `json:"montant"`
	Disponible   Decimal   `json:"disponible"`
	OccurredAt   time.Time `json:"occurredAt"`
}

type PostingCreatedEvent struct {
	Kind         string    `json:"kind"`
	PostingID    string    `json:"postingId"`
	DocumentID   string    `json:"documentId"`
	Operation    string    `json:"operation"`
	CompteDebit  string    `json:"compteDebitId"`
	CompteCredit string    `json:"compteCreditId"`
	Montant      Decimal   `json:"montant"`
	Reversal     bool      `json:"reversal"`
	OccurredAt   time.Time `json:"occurredAt"`
}
