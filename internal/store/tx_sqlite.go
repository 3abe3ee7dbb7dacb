package store

import (
	"booky/internal/usecase"
	"context"
	"database/sql"
	"time"
)

type TxSQLite struct {
	db      *sql.DB
	timeout time.Duration
}

func NewTxSQLite(db *sql.DB, timeout time.Duration) *TxSQLite {
	return &TxSQLite{db: db, timeout: timeout}
}

func (t *TxSQLite) WithinTx(ctx context.Context, fn func(ctx context.Context, repos usecase.Repositories) error) error {
	return inSQLTx(ctx, t.db, func(q sqlQuerier) error {
		return fn(ctx, usecase.Repositories{
			Books:        NewBookSQLite(q, t.timeout),
			Authors:      NewAuthorSQLite(q, t.timeout),
			Publications: NewPublicationSQLite(q, t.timeout),
		})
	})
}
