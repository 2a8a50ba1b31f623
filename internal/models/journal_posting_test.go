package models

import (
	"testing"
	"time"
)

func TestJournalPosting_Reverse(t *testing.T) {
	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	original := JournalPosting{
		ID:           "JRN-001",
		DocumentID:   "ENG-001",
		Operation:    OperationEngagement,
		RuleID:       "RGL-001",
		CompteDebit:  "6022",
		CompteCredit: "4012",
		Montant:      d("400000"),
		PostingDate:  at.AddDate(0, 0, -3),
		CreatedAt:    at.AddDate(0, 0, -3),
	}

	reversal := original.Reverse("JRN-002", at)

	if reversal.CompteDebit != "4012" || reversal.CompteCredit != "6022" {
		t.Errorf("accounts not swapped: debit %s credit %s", reversal.CompteDebit, reversal.CompteCredit)
	}
	if !reversal.Montant.Equal(original.Montant) {
		t.Errorf("amount must stay positive and equal, got %s", reversal.Montant)
	}
	if !reversal.Reversal || reversal.ReversesID != "JRN-001" {
		t.Errorf("reversal link missing: %+v", reversal)
	}
	if reversal.RuleID != original.RuleID {
		t.Errorf("reversal must keep the originating rule")
	}
	if !reversal.PostingDate.Equal(at) {
		t.Errorf("reversal posts at cancellation time")
	}
}
