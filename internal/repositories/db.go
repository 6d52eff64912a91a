package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/supermaker/experiments-api/internal/middlewares"
)

// ext returns the executor to run queries against: the request-scoped
// transaction when the tx middleware put one in the context, the pool
// otherwise.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
