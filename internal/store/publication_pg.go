package store

import (
	"booky/internal/entity"
	"booky/internal/usecase"
	"context"
	"time"
)

type PublicationPG struct {
	c pgCollection[entity.Publication, *entity.Publication]
}

func NewPublicationPG(db pgQuerier, timeout time.Duration) *PublicationPG {
	return &PublicationPG{c: pgCollection[entity.Publication, *entity.Publication]{db: db, coll: publicationsCollection, timeout: timeout}}
}

func (r *PublicationPG) List(ctx context.Context) ([]entity.Publication, error) {
	return r.c.list(ctx, "TRUE")
}

func (r *PublicationPG) Create(ctx context.Context, pub *entity.Publication) error {
	return r.c.insert(ctx, pub.ID, pub)
}

func (r *PublicationPG) Update(ctx context.Context, id int, mutate func(*entity.Publication) error) (entity.Publication, error) {
	p, ok, err := r.c.update(ctx, id, mutate, func(p *entity.Publication) any { return p.ID })
	if err != nil {
		return entity.Publication{}, err
	}
	if !ok {
		return entity.Publication{}, usecase.PublicationNotFound(id)
	}
	return p, nil
}
