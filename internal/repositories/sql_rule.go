package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/models"
)

type RuleRepository interface {
	Create(ctx context.Context, id string, in models.CreateAccountingRuleIn, now time.Time) (*models.AccountingRule, error)
	Get(ctx context.Context, id string) (*models.AccountingRule, error)
	List(ctx context.Context, opts models.RuleFilterOptions) ([]models.AccountingRule, error)

	// ListActive returns the active rules for one operation type ordered by
	// ascending ordre, the evaluation order of the matcher.
	ListActive(ctx context.Context, op models.OperationType) ([]models.AccountingRule, error)

	Update(ctx context.Context, rule *models.AccountingRule) error
	SetActive(ctx context.Context, id string, actif bool, now time.Time) error

	// IsReferencedByPosting reports whether any journal posting was generated
	// from the rule. Referenced rules may only be deactivated, never edited.
	IsReferencedByPosting(ctx context.Context, ruleID string) (bool, error)
}

type ruleRepository sqlRepo

var _ RuleRepository = (*ruleRepository)(nil)

func (r ruleRepository) Create(ctx context.Context, id string, in models.CreateAccountingRuleIn, now time.Time) (res *models.AccountingRule, err error) {
	db := r.r.extractTxWrite(ctx)

	rule := models.AccountingRule{
		ID:            id,
		TypeOperation: in.TypeOperation,
		Libelle:       in.Libelle,
		Conditions:    in.Conditions,
		CompteDebit:   in.CompteDebit,
		CompteCredit:  in.CompteCredit,
		Actif:         true,
		Ordre:         in.Ordre,
		Permanente:    in.Permanente,
		DateDebut:     in.DateDebut,
		DateFin:       in.DateFin,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err = db.ExecContext(ctx, queryCreateRule,
		rule.ID,
		rule.TypeOperation,
		rule.Libelle,
		rule.Conditions,
		rule.CompteDebit,
		rule.CompteCredit,
		rule.Actif,
		rule.Ordre,
		rule.Permanente,
		rule.DateDebut,
		rule.DateFin,
		rule.CreatedAt,
		rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &rule, nil
}

func (r ruleRepository) Get(ctx context.Context, id string) (*models.AccountingRule, error) {
	db := r.r.extractTxRead(ctx)

	rule, err := scanRule(db.QueryRowContext(ctx, queryGetRule, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrRuleNotFound
		}
		return nil, err
	}

	return rule, nil
}

func (r ruleRepository) List(ctx context.Context, opts models.RuleFilterOptions) (res []models.AccountingRule, err error) {
	db := r.r.extractTxRead(ctx)

	query, args, err := buildListRulesQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.queryRules(ctx, db, query, args...)
}

func (r ruleRepository) ListActive(ctx context.Context, op models.OperationType) (res []models.AccountingRule, err error) {
	db := r.r.extractTxWrite(ctx)
	return r.queryRules(ctx, db, queryListActiveRules, op)
}

func (r ruleRepository) queryRules(ctx context.Context, db sqlTx, query string, args ...interface{}) (res []models.AccountingRule, err error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	for rows.Next() {
		rule, errScan := scanRule(rows)
		if errScan != nil {
			return nil, errScan
		}
		res = append(res, *rule)
	}

	return res, rows.Err()
}

func (r ruleRepository) Update(ctx context.Context, rule *models.AccountingRule) (err error) {
	db := r.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryUpdateRule,
		rule.Libelle,
		rule.Conditions,
		rule.CompteDebit,
		rule.CompteCredit,
		rule.Actif,
		rule.Ordre,
		rule.Permanente,
		rule.DateDebut,
		rule.DateFin,
		rule.UpdatedAt,
		rule.ID,
	)
	if err != nil {
		return err
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affectedRows == 0 {
		return common.ErrRuleNotFound
	}

	return nil
}

func (r ruleRepository) SetActive(ctx context.Context, id string, actif bool, now time.Time) (err error) {
	db := r.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, querySetRuleActive, actif, now, id)
	if err != nil {
		return err
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affectedRows == 0 {
		return common.ErrRuleNotFound
	}

	return nil
}

func (r ruleRepository) IsReferencedByPosting(ctx context.Context, ruleID string) (referenced bool, err error) {
	db := r.r.extractTxWrite(ctx)

	err = db.QueryRowContext(ctx, queryRuleReferencedByPosting, ruleID).Scan(&referenced)
	if err != nil {
		return false, err
	}

	return referenced, nil
}

func scanRule(row rowScanner) (*models.AccountingRule, error) {
	var (
		rule      models.AccountingRule
		dateDebut sql.NullTime
		dateFin   sql.NullTime
	)

	err := row.Scan(
		&rule.ID,
		&rule.TypeOperation,
		&rule.Libelle,
		&rule.Conditions,
		&rule.CompteDebit,
		&rule.CompteCredit,
		&rule.Actif,
		&rule.Ordre,
		&rule.Permanente,
		&dateDebut,
		&dateFin,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.DateDebut = fromNullTime(dateDebut)
	rule.DateFin = fromNullTime(dateFin)

	return &rule, nil
}
