package store

import (
	"booky/internal/entity"
	"booky/internal/usecase"
	"context"
	"time"
)

type PublicationSQLite struct {
	c sqliteCollection[entity.Publication, *entity.Publication]
}

func NewPublicationSQLite(db sqlQuerier, timeout time.Duration) *PublicationSQLite {
	return &PublicationSQLite{c: sqliteCollection[entity.Publication, *entity.Publication]{db: db, coll: publicationsCollection, timeout: timeout}}
}

func (r *PublicationSQLite) List(ctx context.Context) ([]entity.Publication, error) {
	return r.c.list(ctx, "1 = 1")
}

func (r *PublicationSQLite) Create(ctx context.Context, pub *entity.Publication) error {
	return r.c.insert(ctx, pub.ID, pub)
}

func (r *PublicationSQLite) Update(ctx context.Context, id int, mutate func(*entity.Publication) error) (entity.Publication, error) {
	p, ok, err := r.c.update(ctx, id, mutate, func(p *entity.Publication) any { return p.ID })
	if err != nil {
		return entity.Publication{}, err
	}
	if !ok {
		return entity.Publication{}, usecase.PublicationNotFound(id)
	}
	return p, nil
}
