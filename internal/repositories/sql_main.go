package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/publibudget/go-commitment-engine/internal/common/log"
	"github.com/publibudget/go-commitment-engine/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	blr *budgetLineRepository
	dr  *documentRepository
	rr  *ruleRepository
	jr  *journalRepository
}

func NewSQLRepository(
	dbWrite *sql.DB,
	dbRead *sql.DB,
	cfg config.Config,
) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.blr = (*budgetLineRepository)(&rtx.common)
	rtx.dr = (*documentRepository)(&rtx.common)
	rtx.rr = (*ruleRepository)(&rtx.common)
	rtx.jr = (*journalRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetBudgetLineRepository() BudgetLineRepository
	GetDocumentRepository() DocumentRepository
	GetRuleRepository() RuleRepository
	GetJournalRepository() JournalRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	log.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			log.Panic(ctx, "[DATABASE.TRANSACTION.PANIC]", log.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			log.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", log.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					log.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", log.Err(err))
					err = nil
				}
			}

			log.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = withTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetBudgetLineRepository() BudgetLineRepository {
	return r.blr
}

func (r *Repository) GetDocumentRepository() DocumentRepository {
	return r.dr
}

func (r *Repository) GetRuleRepository() RuleRepository {
	return r.rr
}

func (r *Repository) GetJournalRepository() JournalRepository {
	return r.jr
}
