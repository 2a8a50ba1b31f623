package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalPosting is the debit/credit pair generated when a document
// transition requires a posting. Postings are never mutated; a cancellation
// produces an equal-and-opposite reversal posting.
type JournalPosting struct {
	ID         string
	DocumentID string
	Operation  OperationType

	// RuleID references the accounting rule the posting was generated from.
	RuleID string

	CompteDebit  string
	CompteCredit string
	Montant      decimal.Decimal
	PostingDate  time.Time

	// Reversal marks the equal-and-opposite posting created on cancellation.
	Reversal   bool
	ReversesID string

	CreatedAt time.Time
}

// Reverse builds the equal-and-opposite posting for a cancellation.
// Debit and credit accounts are swapped, the amount stays positive.
func (p JournalPosting) Reverse(id string, at time.Time) JournalPosting {
	return JournalPosting{
		ID:           id,
		DocumentID:   p.DocumentID,
		Operation:    p.Operation,
		RuleID:       p.RuleID,
		CompteDebit:  p.CompteCredit,
		CompteCredit: p.CompteDebit,
		Montant:      p.Montant,
		PostingDate:  at,
		Reversal:     true,
		ReversesID:   p.ID,
		CreatedAt:    at,
	}
}

type JournalPostingOut struct {
	ID           string        `json:"id"`
	DocumentID   string        `json:"documentId"`
	Operation    OperationType `json:"operation"`
	RuleID       string        `json:"ruleId,omitempty"`
	CompteDebit  string        `json:"compteDebitId"`
	CompteCredit string        `json:"compteCreditId"`
	Montant      Decimal       `json:"montant"`
	PostingDate  time.Time     `json:"postingDate"`
	Reversal     bool          `json:"reversal"`
}

func (p JournalPosting) ToPostingOut() JournalPostingOut {
	return JournalPostingOut{
		ID:           p.ID,
		DocumentID:   p.DocumentID,
		Operation:    p.Operation,
		RuleID:       p.RuleID,
		CompteDebit:  p.CompteDebit,
		CompteCredit: p.CompteCredit,
		Montant:      NewDecimalFromExternal(p.Montant),
		PostingDate:  p.PostingDate,
		Reversal:     p.Reversal,
	}
}
