package usecase

import (
	"booky/internal/entity"
	"context"
	"fmt"
)

type AuthorUsecase struct {
	repo AuthorRepository
}

func NewAuthorUsecase(repo AuthorRepository) *AuthorUsecase {
	return &AuthorUsecase{repo: repo}
}

func (u *AuthorUsecase) List(ctx context.Context) ([]entity.Author, error) {
	authors, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	if authors == nil {
		authors = []entity.Author{}
	}
	return authors, nil
}

// ListByBook returns the authors whose book list holds isbn.
func (u *AuthorUsecase) ListByBook(ctx context.Context, isbn string) ([]entity.Author, error) {
	authors, err := u.repo.ListByBook(ctx, isbn)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, &NotFoundError{Entity: "author", Field: "book", Key: isbn}
	}
	return authors, nil
}

func (u *AuthorUsecase) Create(ctx context.Context, author entity.Author) (entity.Author, error) {
	author.Normalize()
	if err := u.repo.Create(ctx, &author); err != nil {
		return entity.Author{}, fmt.Errorf("create author: %w", err)
	}
	return author, nil
}
