package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/insighteats/internal/logger"
)

// TxGetter returns the transaction bound to the context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	var ex sqlx.ExtContext = db
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			ex = tx
		}
	}
	return ex
}

// logQuery logs a statement on a single line with its args, result and error.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// rowsAffected returns the number of affected rows, or 0 when unknown.
func rowsAffected(res interface{ RowsAffected() (int64, error) }) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
