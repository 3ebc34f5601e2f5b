package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Queryer is the subset of *sql.DB and *sql.Tx the repositories need.
// Passing nil to a repository method runs against the repository's own
// connection pool.
type Queryer interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	Exec(query string, args ...interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// ReadSession is a read-only unit of work pinned to a single connection.
type ReadSession interface {
	Queryer
	Rollback() error
}

type ReadSessionProvider interface {
	Begin(ctx context.Context) (ReadSession, error)
}

type readSessionProviderHandler struct {
	Db *sql.DB
}

func NewReadSessionProvider(db *sql.DB) ReadSessionProvider {
	return readSessionProviderHandler{Db: db}
}

// Begin opens a read-only transaction. Concurrent fetches each take their
// own session so they never share a connection.
func (h readSessionProviderHandler) Begin(ctx context.Context) (ReadSession, error) {
	tx, err := h.Db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin read session: %w", err)
	}
	return tx, nil
}

func pick(pool *sql.DB, tx Queryer) Queryer {
	if tx != nil {
		return tx
	}
	return pool
}
