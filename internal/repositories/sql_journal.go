package repositories

import (
	"context"
	"database/sql"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/models"
)

// JournalRepository is insert-only: postings are immutable once written,
// cancellations add reversal rows instead of deleting.
type JournalRepository interface {
	Create(ctx context.Context, posting models.JournalPosting) error
	ListByDocument(ctx context.Context, documentID string) ([]models.JournalPosting, error)
	ListUnreversedByDocument(ctx context.Context, documentID string) ([]models.JournalPosting, error)
}

type journalRepository sqlRepo

var _ JournalRepository = (*journalRepository)(nil)

func (j journalRepository) Create(ctx context.Context, posting models.JournalPosting) (err error) {
	db := j.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryCreatePosting,
		posting.ID,
		posting.DocumentID,
		posting.Operation,
		nullableRuleID(posting.RuleID),
		posting.CompteDebit,
		posting.CompteCredit,
		posting.Montant,
		posting.PostingDate,
		posting.Reversal,
		nullableRuleID(posting.ReversesID),
		posting.CreatedAt,
	)
	if err != nil {
		return err
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affectedRows == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}

func (j journalRepository) ListByDocument(ctx context.Context, documentID string) ([]models.JournalPosting, error) {
	db := j.r.extractTxRead(ctx)
	return j.queryPostings(ctx, db, queryListPostingsByDocument, documentID)
}

func (j journalRepository) ListUnreversedByDocument(ctx context.Context, documentID string) ([]models.JournalPosting, error) {
	db := j.r.extractTxWrite(ctx)
	return j.queryPostings(ctx, db, queryListUnreversedPostings, documentID)
}

func (j journalRepository) queryPostings(ctx context.Context, db sqlTx, query string, args ...interface{}) (res []models.JournalPosting, err error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	for rows.Next() {
		var (
			posting    models.JournalPosting
			ruleID     sql.NullString
			reversesID sql.NullString
		)
		err = rows.Scan(
			&posting.ID,
			&posting.DocumentID,
			&posting.Operation,
			&ruleID,
			&posting.CompteDebit,
			&posting.CompteCredit,
			&posting.Montant,
			&posting.PostingDate,
			&posting.Reversal,
			&reversesID,
			&posting.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		posting.RuleID = ruleID.String
		posting.ReversesID = reversesID.String

		res = append(res, posting)
	}

	return res, rows.Err()
}
