package models

import (
	"time"
)

// BudgetLineOption is an option for creating a new BudgetLine
type BudgetLineOption func(*BudgetLine)

// WithSkipAvailabilityCheck is used to bypass the disponible sufficiency checks.
// This is only valid when replaying already-committed ledger mutations, where
// the decision was taken when the mutation was first applied.
func WithSkipAvailabilityCheck() BudgetLineOption {
	return func(l *BudgetLine) {
		l.skipAvailabilityCheck = true
	}
}

// WithVersion is used to set the optimistic-lock version of the line
func WithVersion(version int) BudgetLineOption {
	return func(l *BudgetLine) {
		l.version = version
	}
}

// WithLastUpdatedAt is used to set the last updated time of the line
func WithLastUpdatedAt(lastUpdatedAt time.Time) BudgetLineOption {
	return func(l *BudgetLine) {
		l.lastUpdatedAt = lastUpdatedAt
	}
}
