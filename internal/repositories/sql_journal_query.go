package repositories

import "database/sql"

var (
	postingColumns = `
		"id",
		"documentId",
		"operation",
		"ruleId",
		"compteDebitId",
		"compteCreditId",
		"montant",
		"postingDate",
		"reversal",
		"reversesId",
		"createdAt"`

	queryCreatePosting = `
		INSERT INTO journal_posting (
			"id",
			"documentId",
			"operation",
			"ruleId",
			"compteDebitId",
			"compteCreditId",
			"montant",
			"postingDate",
			"reversal",
			"reversesId",
			"createdAt"
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	queryListPostingsByDocument = `
		SELECT ` + postingColumns + `
		FROM journal_posting
		WHERE "documentId" = $1
		ORDER BY "createdAt" ASC`

	queryListUnreversedPostings = `
		SELECT ` + postingColumns + `
		FROM journal_posting
		WHERE "documentId" = $1
			AND "reversal" = false
			AND NOT EXISTS (
				SELECT 1 FROM journal_posting reversal
				WHERE reversal."reversesId" = journal_posting."id"
			)
		ORDER BY "createdAt" ASC`
)

func nullableRuleID(id string) sql.NullString {
	if id == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: id, Valid: true}
}
