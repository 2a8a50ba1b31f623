package repositories

import (
	"context"
	"database/sql"
)

// sqlTx is the query surface shared by *sql.DB and *sql.Tx, so repository
// methods run unchanged inside and outside a transaction.
type sqlTx interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type txContextKey struct{}

// withTx stores the running transaction in the context so nested repository
// calls join it instead of grabbing their own connection.
func withTx(ctx context.Context, tx sqlTx) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

func txFromContext(ctx context.Context) (sqlTx, bool) {
	tx, ok := ctx.Value(txContextKey{}).(sqlTx)
	return tx, ok
}

func (r *Repository) extractTxWrite(ctx context.Context) sqlTx {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.dbWrite
}

// extractTxRead prefers the transaction when one is running, so reads
// observe the transaction's own writes.
func (r *Repository) extractTxRead(ctx context.Context) sqlTx {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.dbRead
}
