package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgQuerier is satisfied by *pgxpool.Pool and pgx.Tx, so repositories work
// the same inside and outside a unit of work.
type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type pgCollection[T any, P document[T]] struct {
	db      pgQuerier
	coll    collection
	timeout time.Duration
}

func (c pgCollection[T, P]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// list returns every document matching cond in insertion order.
func (c pgCollection[T, P]) list(ctx context.Context, cond string, args ...any) ([]T, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf("SELECT doc FROM %s WHERE %s ORDER BY id", c.coll.table, cond)
	rows, err := c.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", c.coll.table, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		v, err := decodeDoc[T, P](raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// first returns the oldest document matching cond; ok is false when none does.
func (c pgCollection[T, P]) first(ctx context.Context, cond string, args ...any) (v T, ok bool, err error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf("SELECT doc FROM %s WHERE %s ORDER BY id LIMIT 1", c.coll.table, cond)
	var raw []byte
	if err := c.db.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return v, false, nil
		}
		return v, false, fmt.Errorf("query %s: %w", c.coll.table, err)
	}
	v, err = decodeDoc[T, P](raw)
	return v, err == nil, err
}

func (c pgCollection[T, P]) insert(ctx context.Context, key any, v *T) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	raw, err := encodeDoc[T, P](v)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("INSERT INTO %s (%s, doc) VALUES ($1, $2)", c.coll.table, c.coll.key)
	if _, err := c.db.Exec(ctx, query, key, raw); err != nil {
		return fmt.Errorf("insert into %s: %w", c.coll.table, err)
	}
	return nil
}

// update locks the oldest document with the given key, applies mutate and
// writes it back. keyOf re-derives the key column from the mutated document.
func (c pgCollection[T, P]) update(ctx context.Context, key any, mutate func(*T) error, keyOf func(*T) any) (v T, ok bool, err error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	err = pgx.BeginFunc(ctx, c.db, func(tx pgx.Tx) error {
		query := fmt.Sprintf("SELECT id, doc FROM %s WHERE %s = $1 ORDER BY id LIMIT 1 FOR UPDATE", c.coll.table, c.coll.key)
		var (
			id  int64
			raw []byte
		)
		if err := tx.QueryRow(ctx, query, key).Scan(&id, &raw); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("lock %s: %w", c.coll.table, err)
		}

		doc, err := decodeDoc[T, P](raw)
		if err != nil {
			return err
		}
		if err := mutate(&doc); err != nil {
			return err
		}
		raw, err = encodeDoc[T, P](&doc)
		if err != nil {
			return err
		}

		stmt := fmt.Sprintf("UPDATE %s SET %s = $2, doc = $3, updated_at = now() WHERE id = $1", c.coll.table, c.coll.key)
		if _, err := tx.Exec(ctx, stmt, id, keyOf(&doc), raw); err != nil {
			return fmt.Errorf("update %s: %w", c.coll.table, err)
		}
		v, ok = doc, true
		return nil
	})
	return v, ok, err
}

// remove deletes the oldest document with the given key and returns it.
func (c pgCollection[T, P]) remove(ctx context.Context, key any) (v T, ok bool, err error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		DELETE FROM %[1]s
		WHERE id = (SELECT id FROM %[1]s WHERE %[2]s = $1 ORDER BY id LIMIT 1)
		RETURNING doc`, c.coll.table, c.coll.key)
	var raw []byte
	if err := c.db.QueryRow(ctx, query, key).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return v, false, nil
		}
		return v, false, fmt.Errorf("delete from %s: %w", c.coll.table, err)
	}
	v, err = decodeDoc[T, P](raw)
	return v, err == nil, err
}
