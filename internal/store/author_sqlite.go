package store

import (
	"booky/internal/entity"
	"booky/internal/usecase"
	"context"
	"time"
)

type AuthorSQLite struct {
	c sqliteCollection[entity.Author, *entity.Author]
}

func NewAuthorSQLite(db sqlQuerier, timeout time.Duration) *AuthorSQLite {
	return &AuthorSQLite{c: sqliteCollection[entity.Author, *entity.Author]{db: db, coll: authorsCollection, timeout: timeout}}
}

func (r *AuthorSQLite) List(ctx context.Context) ([]entity.Author, error) {
	return r.c.list(ctx, "1 = 1")
}

func (r *AuthorSQLite) ListByBook(ctx context.Context, isbn string) ([]entity.Author, error) {
	return r.c.list(ctx, "EXISTS (SELECT 1 FROM json_each(authors.doc, '$.books') b WHERE b.value = ?)", isbn)
}

func (r *AuthorSQLite) Create(ctx context.Context, author *entity.Author) error {
	return r.c.insert(ctx, author.ID, author)
}

func (r *AuthorSQLite) Update(ctx context.Context, id int, mutate func(*entity.Author) error) (entity.Author, error) {
	a, ok, err := r.c.update(ctx, id, mutate, func(a *entity.Author) any { return a.ID })
	if err != nil {
		return entity.Author{}, err
	}
	if !ok {
		return entity.Author{}, usecase.AuthorNotFound(id)
	}
	return a, nil
}
