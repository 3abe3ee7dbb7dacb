package store

import (
	"booky/internal/entity"
	"booky/internal/usecase"
	"context"
	"time"
)

type AuthorPG struct {
	c pgCollection[entity.Author, *entity.Author]
}

func NewAuthorPG(db pgQuerier, timeout time.Duration) *AuthorPG {
	return &AuthorPG{c: pgCollection[entity.Author, *entity.Author]{db: db, coll: authorsCollection, timeout: timeout}}
}

func (r *AuthorPG) List(ctx context.Context) ([]entity.Author, error) {
	return r.c.list(ctx, "TRUE")
}

func (r *AuthorPG) ListByBook(ctx context.Context, isbn string) ([]entity.Author, error) {
	return r.c.list(ctx, "doc->'books' @> jsonb_build_array($1::text)", isbn)
}

func (r *AuthorPG) Create(ctx context.Context, author *entity.Author) error {
	return r.c.insert(ctx, author.ID, author)
}

func (r *AuthorPG) Update(ctx context.Context, id int, mutate func(*entity.Author) error) (entity.Author, error) {
	a, ok, err := r.c.update(ctx, id, mutate, func(a *entity.Author) any { return a.ID })
	if err != nil {
		return entity.Author{}, err
	}
	if !ok {
		return entity.Author{}, usecase.AuthorNotFound(id)
	}
	return a, nil
}
