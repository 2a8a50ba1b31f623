package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/publibudget/go-commitment-engine/internal/models"
)

var (
	budgetLineColumns = `
		"id",
		"code",
		"libelle",
		"exercice",
		"montantInitial",
		"montantModifie",
		"montantReserve",
		"montantEngage",
		"montantPaye",
		"version",
		"updatedAt"`

	queryCreateBudgetLine = `
		INSERT INTO budget_line (
			"id",
			"code",
			"libelle",
			"exercice",
			"montantInitial",
			"montantModifie",
			"montantReserve",
			"montantEngage",
			"montantPaye",
			"version",
			"createdAt",
			"updatedAt"
		) VALUES ($1, $2, $3, $4, $5, $5, 0, 0, 0, 1, now(), now())
		RETURNING ` + budgetLineColumns

	queryGetBudgetLine = `
		SELECT ` + budgetLineColumns + `
		FROM budget_line
		WHERE "id" = $1`

	queryGetBudgetLineForUpdate = queryGetBudgetLine + `
		FOR UPDATE`

	queryUpdateBudgetLineAmounts = `
		UPDATE budget_line
		SET
			"montantModifie" = $1,
			"montantReserve" = $2,
			"montantEngage" = $3,
			"montantPaye" = $4,
			"version" = budget_line."version" + 1,
			"updatedAt" = now()
		WHERE "id" = $5 AND "version" = $6`

	queryInsertLedgerOperation = `
		INSERT INTO ledger_operation (
			"documentId",
			"operation",
			"budgetLineId",
			"montant",
			"appliedAt"
		) VALUES ($1, $2, $3, $4, now())
		ON CONFLICT ("documentId", "operation") DO NOTHING`
)

func buildListBudgetLinesQuery(opts models.BudgetLineFilterOptions) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Select(
			`"id"`,
			`"code"`,
			`"libelle"`,
			`"exercice"`,
			`"montantInitial"`,
			`"montantModifie"`,
			`"montantReserve"`,
			`"montantEngage"`,
			`"montantPaye"`,
			`"version"`,
			`"updatedAt"`,
		).
		From("budget_line").
		OrderBy(`"code"`)

	if opts.Exercice != 0 {
		query = query.Where(sq.Eq{`"exercice"`: opts.Exercice})
	}

	if opts.Code != "" {
		query = query.Where(sq.Eq{`"code"`: opts.Code})
	}

	if opts.Limit > 0 {
		query = query.Limit(uint64(opts.Limit))
	}

	return query.ToSql()
}
