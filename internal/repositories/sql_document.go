package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/models"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *models.CommitmentDocument) error
	Get(ctx context.Context, id string) (*models.CommitmentDocument, error)
	GetForUpdate(ctx context.Context, id string) (*models.CommitmentDocument, error)
	Update(ctx context.Context, doc *models.CommitmentDocument) error
	List(ctx context.Context, opts models.DocumentFilterOptions) ([]models.CommitmentDocument, error)

	// SumSourceConsumption totals the montant of validated, non-cancelled
	// documents drawing on the given source. Drafts hold no consumption.
	SumSourceConsumption(ctx context.Context, kind models.SourceKind, sourceID string) (decimal.Decimal, error)
}

type documentRepository sqlRepo

var _ DocumentRepository = (*documentRepository)(nil)

func (d documentRepository) Create(ctx context.Context, doc *models.CommitmentDocument) (err error) {
	db := d.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryCreateDocument,
		doc.ID,
		doc.Kind,
		doc.BudgetLineID,
		nullableSourceKind(doc.SourceKind),
		nullableString(doc.SourceID),
		nullableString(doc.FournisseurID),
		nullableString(doc.BeneficiaireLibre),
		doc.Objet,
		doc.Montant,
		doc.MontantPaye,
		doc.Statut,
		doc.CreatedAt,
		doc.LastUpdatedAt,
		doc.Version,
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

func (d documentRepository) Get(ctx context.Context, id string) (*models.CommitmentDocument, error) {
	db := d.r.extractTxRead(ctx)
	return d.getByQuery(ctx, db, queryGetDocument, id)
}

func (d documentRepository) GetForUpdate(ctx context.Context, id string) (*models.CommitmentDocument, error) {
	db := d.r.extractTxWrite(ctx)
	return d.getByQuery(ctx, db, queryGetDocumentForUpdate, id)
}

func (d documentRepository) getByQuery(ctx context.Context, db sqlTx, query string, id string) (*models.CommitmentDocument, error) {
	doc, err := scanDocument(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDocumentNotFound
		}
		return nil, err
	}

	return doc, nil
}

// Update persists status, cumulative payments and lifecycle timestamps,
// guarded by the document version.
func (d documentRepository) Update(ctx context.Context, doc *models.CommitmentDocument) (err error) {
	db := d.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryUpdateDocument,
		doc.Statut,
		doc.MontantPaye,
		doc.ValidatedAt,
		doc.ReceivedAt,
		doc.OrdonnanceAt,
		doc.PaidAt,
		doc.CancelledAt,
		doc.LastUpdatedAt,
		doc.ID,
		doc.Version,
	)
	if err != nil {
		return err
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affectedRows == 0 {
		return common.ErrConcurrentModification
	}

	doc.Version++

	return nil
}

func (d documentRepository) List(ctx context.Context, opts models.DocumentFilterOptions) (res []models.CommitmentDocument, err error) {
	db := d.r.extractTxRead(ctx)

	query, args, err := buildListDocumentsQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	for rows.Next() {
		doc, errScan := scanDocument(rows)
		if errScan != nil {
			return nil, errScan
		}
		res = append(res, *doc)
	}

	return res, rows.Err()
}

func (d documentRepository) SumSourceConsumption(ctx context.Context, kind models.SourceKind, sourceID string) (res decimal.Decimal, err error) {
	db := d.r.extractTxWrite(ctx)

	err = db.QueryRowContext(ctx, querySumSourceConsumption, kind, sourceID).Scan(&res)
	if err != nil {
		return decimal.Zero, err
	}

	return res, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDocument(row rowScanner) (*models.CommitmentDocument, error) {
	var (
		doc               models.CommitmentDocument
		sourceKind        sql.NullString
		sourceID          sql.NullString
		fournisseurID     sql.NullString
		beneficiaireLibre sql.NullString
		validatedAt       sql.NullTime
		receivedAt        sql.NullTime
		ordonnanceAt      sql.NullTime
		paidAt            sql.NullTime
		cancelledAt       sql.NullTime
	)

	err := row.Scan(
		&doc.ID,
		&doc.Kind,
		&doc.BudgetLineID,
		&sourceKind,
		&sourceID,
		&fournisseurID,
		&beneficiaireLibre,
		&doc.Objet,
		&doc.Montant,
		&doc.MontantPaye,
		&doc.Statut,
		&doc.CreatedAt,
		&validatedAt,
		&receivedAt,
		&ordonnanceAt,
		&paidAt,
		&cancelledAt,
		&doc.LastUpdatedAt,
		&doc.Version,
	)
	if err != nil {
		return nil, err
	}

	if sourceKind.Valid {
		sk := models.SourceKind(sourceKind.String)
		doc.SourceKind = &sk
	}
	doc.SourceID = fromNullString(sourceID)
	doc.FournisseurID = fromNullString(fournisseurID)
	doc.BeneficiaireLibre = fromNullString(beneficiaireLibre)
	doc.ValidatedAt = fromNullTime(validatedAt)
	doc.ReceivedAt = fromNullTime(receivedAt)
	doc.OrdonnanceAt = fromNullTime(ordonnanceAt)
	doc.PaidAt = fromNullTime(paidAt)
	doc.CancelledAt = fromNullTime(cancelledAt)

	return &doc, nil
}
