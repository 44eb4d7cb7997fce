package postgres

import (
	"context"
	"database/sql"
)

// Rows is the read side of *sql.Rows that repositories iterate over.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Querier runs read queries. Repositories depend on it instead of *sql.DB so
// tests can hand them scripted rows.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
}

type sqlQuerier struct {
	db *sql.DB
}

func NewQuerier(db *sql.DB) Querier {
	return &sqlQuerier{db: db}
}

func (q *sqlQuerier) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
