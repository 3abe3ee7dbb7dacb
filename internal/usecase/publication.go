package usecase

import (
	"booky/internal/entity"
	"context"
	"fmt"
)

type PublicationUsecase struct {
	repo PublicationRepository
}

func NewPublicationUsecase(repo PublicationRepository) *PublicationUsecase {
	return &PublicationUsecase{repo: repo}
}

func (u *PublicationUsecase) List(ctx context.Context) ([]entity.Publication, error) {
	pubs, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list publications: %w", err)
	}
	if pubs == nil {
		pubs = []entity.Publication{}
	}
	return pubs, nil
}

func (u *PublicationUsecase) Create(ctx context.Context, pub entity.Publication) (entity.Publication, error) {
	pub.Normalize()
	if err := u.repo.Create(ctx, &pub); err != nil {
		return entity.Publication{}, fmt.Errorf("create publication: %w", err)
	}
	return pub, nil
}
