package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/models"
)

type BudgetLineRepository interface {
	Create(ctx context.Context, id string, in models.CreateBudgetLineIn) (*models.BudgetLine, error)
	Get(ctx context.Context, id string) (*models.BudgetLine, error)
	GetForUpdate(ctx context.Context, id string) (*models.BudgetLine, error)
	Save(ctx context.Context, line *models.BudgetLine) error
	List(ctx context.Context, opts models.BudgetLineFilterOptions) ([]models.BudgetLine, error)

	// MarkOperationApplied records that a ledger operation has been applied
	// for a document. It reports false when the same (document, operation)
	// pair was already recorded, which makes replays no-ops.
	MarkOperationApplied(ctx context.Context, documentID string, operation string, budgetLineID string, amount decimal.Decimal) (bool, error)
}

type budgetLineRepository sqlRepo

var _ BudgetLineRepository = (*budgetLineRepository)(nil)

type budgetLineRow struct {
	ID             string
	Code           string
	Libelle        string
	Exercice       int
	MontantInitial decimal.Decimal
	MontantModifie decimal.Decimal
	MontantReserve decimal.Decimal
	MontantEngage  decimal.Decimal
	MontantPaye    decimal.Decimal
	Version        int
	UpdatedAt      time.Time
}

func (row budgetLineRow) toBudgetLine() (*models.BudgetLine, error) {
	line := models.NewBudgetLine(
		row.ID,
		row.Code,
		row.Libelle,
		row.Exercice,
		row.MontantInitial,
		row.MontantModifie,
		row.MontantReserve,
		row.MontantEngage,
		row.MontantPaye,
		models.WithVersion(row.Version),
		models.WithLastUpdatedAt(row.UpdatedAt),
	)

	// a stored line must never violate the availability invariant
	if line.Disponible().LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", common.ErrCorruptBudgetLine, row.ID)
	}

	return &line, nil
}

func (b budgetLineRepository) Create(ctx context.Context, id string, in models.CreateBudgetLineIn) (res *models.BudgetLine, err error) {
	db := b.r.extractTxWrite(ctx)

	var row budgetLineRow
	err = db.QueryRowContext(ctx, queryCreateBudgetLine,
		id,
		in.Code,
		in.Libelle,
		in.Exercice,
		in.MontantInitial,
	).Scan(
		&row.ID,
		&row.Code,
		&row.Libelle,
		&row.Exercice,
		&row.MontantInitial,
		&row.MontantModifie,
		&row.MontantReserve,
		&row.MontantEngage,
		&row.MontantPaye,
		&row.Version,
		&row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return row.toBudgetLine()
}

func (b budgetLineRepository) Get(ctx context.Context, id string) (res *models.BudgetLine, err error) {
	db := b.r.extractTxRead(ctx)
	return b.getByQuery(ctx, db, queryGetBudgetLine, id)
}

func (b budgetLineRepository) GetForUpdate(ctx context.Context, id string) (res *models.BudgetLine, err error) {
	db := b.r.extractTxWrite(ctx)
	return b.getByQuery(ctx, db, queryGetBudgetLineForUpdate, id)
}

func (b budgetLineRepository) getByQuery(ctx context.Context, db sqlTx, query string, id string) (*models.BudgetLine, error) {
	var row budgetLineRow
	err := db.QueryRowContext(ctx, query, id).Scan(
		&row.ID,
		&row.Code,
		&row.Libelle,
		&row.Exercice,
		&row.MontantInitial,
		&row.MontantModifie,
		&row.MontantReserve,
		&row.MontantEngage,
		&row.MontantPaye,
		&row.Version,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrBudgetLineNotFound
		}
		return nil, err
	}

	return row.toBudgetLine()
}

// Save persists the line's monetary state guarded by its version. A stale
// version means another transaction won the race.
func (b budgetLineRepository) Save(ctx context.Context, line *models.BudgetLine) (err error) {
	db := b.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryUpdateBudgetLineAmounts,
		line.MontantModifie(),
		line.MontantReserve(),
		line.MontantEngage(),
		line.MontantPaye(),
		line.ID(),
		line.Version(),
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

	return nil
}

func (b budgetLineRepository) List(ctx context.Context, opts models.BudgetLineFilterOptions) (res []models.BudgetLine, err error) {
	db := b.r.extractTxRead(ctx)

	query, args, err := buildListBudgetLinesQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	for rows.Next() {
		var row budgetLineRow
		err = rows.Scan(
			&row.ID,
			&row.Code,
			&row.Libelle,
			&row.Exercice,
			&row.MontantInitial,
			&row.MontantModifie,
			&row.MontantReserve,
			&row.MontantEngage,
			&row.MontantPaye,
			&row.Version,
			&row.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		line, errLine := row.toBudgetLine()
		if errLine != nil {
			return nil, errLine
		}

		res = append(res, *line)
	}

	return res, rows.Err()
}

func (b budgetLineRepository) MarkOperationApplied(ctx context.Context, documentID string, operation string, budgetLineID string, amount decimal.Decimal) (applied bool, err error) {
	db := b.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryInsertLedgerOperation, documentID, operation, budgetLineID, amount)
	if err != nil {
		return false, err
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affectedRows > 0, nil
}
