package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// sqlQuerier is satisfied by *sql.DB and *sql.Tx.
type sqlQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// inSQLTx runs fn in a transaction, joining the caller's one when q is
// already a *sql.Tx.
func inSQLTx(ctx context.Context, q sqlQuerier, fn func(sqlQuerier) error) error {
	db, ok := q.(*sql.DB)
	if !ok {
		return fn(q)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

type sqliteCollection[T any, P document[T]] struct {
	db      sqlQuerier
	coll    collection
	timeout time.Duration
}

func (c sqliteCollection[T, P]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

func (c sqliteCollection[T, P]) list(ctx context.Context, cond string, args ...any) ([]T, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf("SELECT doc FROM %s WHERE %s ORDER BY id", c.coll.table, cond)
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", c.coll.table, err)
	}
	defer func() { _ = rows.Close() }()

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

func (c sqliteCollection[T, P]) first(ctx context.Context, cond string, args ...any) (v T, ok bool, err error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf("SELECT doc FROM %s WHERE %s ORDER BY id LIMIT 1", c.coll.table, cond)
	var raw []byte
	if err := c.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return v, false, nil
		}
		return v, false, fmt.Errorf("query %s: %w", c.coll.table, err)
	}
	v, err = decodeDoc[T, P](raw)
	return v, err == nil, err
}

func (c sqliteCollection[T, P]) insert(ctx context.Context, key any, v *T) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	raw, err := encodeDoc[T, P](v)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("INSERT INTO %s (%s, doc) VALUES (?, ?)", c.coll.table, c.coll.key)
	if _, err := c.db.ExecContext(ctx, query, key, string(raw)); err != nil {
		return fmt.Errorf("insert into %s: %w", c.coll.table, err)
	}
	return nil
}

// update is the SQLite counterpart of pgCollection.update. SQLite has no row
// locks; the write transaction serializes concurrent updates.
func (c sqliteCollection[T, P]) update(ctx context.Context, key any, mutate func(*T) error, keyOf func(*T) any) (v T, ok bool, err error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	err = inSQLTx(ctx, c.db, func(q sqlQuerier) error {
		query := fmt.Sprintf("SELECT id, doc FROM %s WHERE %s = ? ORDER BY id LIMIT 1", c.coll.table, c.coll.key)
		var (
			id  int64
			raw []byte
		)
		if err := q.QueryRowContext(ctx, query, key).Scan(&id, &raw); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("select %s: %w", c.coll.table, err)
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

		stmt := fmt.Sprintf("UPDATE %s SET %s = ?, doc = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", c.coll.table, c.coll.key)
		if _, err := q.ExecContext(ctx, stmt, keyOf(&doc), string(raw), id); err != nil {
			return fmt.Errorf("update %s: %w", c.coll.table, err)
		}
		v, ok = doc, true
		return nil
	})
	return v, ok, err
}

func (c sqliteCollection[T, P]) remove(ctx context.Context, key any) (v T, ok bool, err error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		DELETE FROM %[1]s
		WHERE id = (SELECT id FROM %[1]s WHERE %[2]s = ? ORDER BY id LIMIT 1)
		RETURNING doc`, c.coll.table, c.coll.key)
	var raw []byte
	if err := c.db.QueryRowContext(ctx, query, key).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return v, false, nil
		}
		return v, false, fmt.Errorf("delete from %s: %w", c.coll.table, err)
	}
	v, err = decodeDoc[T, P](raw)
	return v, err == nil, err
}
