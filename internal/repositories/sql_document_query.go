package repositories

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/publibudget/go-commitment-engine/internal/models"
)

var (
	documentColumns = `
		"id",
		"kind",
		"budgetLineId",
		"sourceKind",
		"sourceId",
		"fournisseurId",
		"beneficiaireLibre",
		"objet",
		"montant",
		"montantPaye",
		"statut",
		"createdAt",
		"validatedAt",
		"receivedAt",
		"ordonnanceAt",
		"paidAt",
		"cancelledAt",
		"updatedAt",
		"version"`

	queryCreateDocument = `
		INSERT INTO commitment_document (
			"id",
			"kind",
			"budgetLineId",
			"sourceKind",
			"sourceId",
			"fournisseurId",
			"beneficiaireLibre",
			"objet",
			"montant",
			"montantPaye",
			"statut",
			"createdAt",
			"updatedAt",
			"version"
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	queryGetDocument = `
		SELECT ` + documentColumns + `
		FROM commitment_document
		WHERE "id" = $1`

	queryGetDocumentForUpdate = queryGetDocument + `
		FOR UPDATE`

	queryUpdateDocument = `
		UPDATE commitment_document
		SET
			"statut" = $1,
			"montantPaye" = $2,
			"validatedAt" = $3,
			"receivedAt" = $4,
			"ordonnanceAt" = $5,
			"paidAt" = $6,
			"cancelledAt" = $7,
			"updatedAt" = $8,
			"version" = commitment_document."version" + 1
		WHERE "id" = $9 AND "version" = $10`

	querySumSourceConsumption = `
		SELECT COALESCE(SUM("montant"), 0)
		FROM commitment_document
		WHERE "sourceKind" = $1
			AND "sourceId" = $2
			AND "statut" NOT IN ('brouillon', 'annule', 'annulee')`
)

func buildListDocumentsQuery(opts models.DocumentFilterOptions) (sqlStr string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Select(
			`"id"`,
			`"kind"`,
			`"budgetLineId"`,
			`"sourceKind"`,
			`"sourceId"`,
			`"fournisseurId"`,
			`"beneficiaireLibre"`,
			`"objet"`,
			`"montant"`,
			`"montantPaye"`,
			`"statut"`,
			`"createdAt"`,
			`"validatedAt"`,
			`"receivedAt"`,
			`"ordonnanceAt"`,
			`"paidAt"`,
			`"cancelledAt"`,
			`"updatedAt"`,
			`"version"`,
		).
		From("commitment_document").
		OrderBy(`"createdAt" DESC`)

	if opts.Kind != "" {
		query = query.Where(sq.Eq{`"kind"`: opts.Kind})
	}

	if opts.BudgetLineID != "" {
		query = query.Where(sq.Eq{`"budgetLineId"`: opts.BudgetLineID})
	}

	if opts.Statut != "" {
		query = query.Where(sq.Eq{`"statut"`: opts.Statut})
	}

	if opts.SourceID != "" {
		query = query.Where(sq.Eq{`"sourceId"`: opts.SourceID})
	}

	if opts.Limit > 0 {
		query = query.Limit(uint64(opts.Limit))
	}

	return query.ToSql()
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullableSourceKind(k *models.SourceKind) sql.NullString {
	if k == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*k), Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func fromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
