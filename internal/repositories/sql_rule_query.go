package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/publibudget/go-commitment-engine/internal/models"
)

var (
	ruleColumns = `
		"id",
		"typeOperation",
		"libelle",
		"conditions",
		"compteDebitId",
		"compteCreditId",
		"actif",
		"ordre",
		"permanente",
		"dateDebut",
		"dateFin",
		"createdAt",
		"updatedAt"`

	queryCreateRule = `
		INSERT INTO accounting_rule (
			"id",
			"typeOperation",
			"libelle",
			"conditions",
			"compteDebitId",
			"compteCreditId",
			"actif",
			"ordre",
			"permanente",
			"dateDebut",
			"dateFin",
			"createdAt",
			"updatedAt"
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	queryGetRule = `
		SELECT ` + ruleColumns + `
		FROM accounting_rule
		WHERE "id" = $1`

	queryListActiveRules = `
		SELECT ` + ruleColumns + `
		FROM accounting_rule
		WHERE "typeOperation" = $1 AND "actif" = true
		ORDER BY "ordre" ASC, "createdAt" ASC`

	queryUpdateRule = `
		UPDATE accounting_rule
		SET
			"libelle" = $1,
			"conditions" = $2,
			"compteDebitId" = $3,
			"compteCreditId" = $4,
			"actif" = $5,
			"ordre" = $6,
			"permanente" = $7,
			"dateDebut" = $8,
			"dateFin" = $9,
			"updatedAt" = $10
		WHERE "id" = $11`

	querySetRuleActive = `
		UPDATE accounting_rule
		SET "actif" = $1, "updatedAt" = $2
		WHERE "id" = $3`

	queryRuleReferencedByPosting = `
		SELECT EXISTS (
			SELECT 1 FROM journal_posting WHERE "ruleId" = $1
		)`
)

func buildListRulesQuery(opts models.RuleFilterOptions) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Select(
			`"id"`,
			`"typeOperation"`,
			`"libelle"`,
			`"conditions"`,
			`"compteDebitId"`,
			`"compteCreditId"`,
			`"actif"`,
			`"ordre"`,
			`"permanente"`,
			`"dateDebut"`,
			`"dateFin"`,
			`"createdAt"`,
			`"updatedAt"`,
		).
		From("accounting_rule").
		OrderBy(`"typeOperation"`, `"ordre" ASC`)

	if opts.TypeOperation != "" {
		query = query.Where(sq.Eq{`"typeOperation"`: opts.TypeOperation})
	}

	if opts.ActiveOnly {
		query = query.Where(sq.Eq{`"actif"`: true})
	}

	if opts.Limit > 0 {
		query = query.Limit(uint64(opts.Limit))
	}

	return query.ToSql()
}
