package store

import (
	"booky/internal/usecase"
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxPG runs a unit of work in one PostgreSQL transaction. Repository updates
// made inside it become savepoints of that transaction.
type TxPG struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewTxPG(db *pgxpool.Pool, timeout time.Duration) *TxPG {
	return &TxPG{db: db, timeout: timeout}
}

func (t *TxPG) WithinTx(ctx context.Context, fn func(ctx context.Context, repos usecase.Repositories) error) error {
	return pgx.BeginFunc(ctx, t.db, func(tx pgx.Tx) error {
		return fn(ctx, usecase.Repositories{
			Books:        NewBookPG(tx, t.timeout),
			Authors:      NewAuthorPG(tx, t.timeout),
			Publications: NewPublicationPG(tx, t.timeout),
		})
	})
}
