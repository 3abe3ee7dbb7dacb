package usecase

import (
	"booky/internal/entity"
	"context"
	"fmt"
)

type BookUsecase struct {
	repo BookRepository
}

func NewBookUsecase(repo BookRepository) *BookUsecase {
	return &BookUsecase{repo: repo}
}

func (u *BookUsecase) List(ctx context.Context) ([]entity.Book, error) {
	books, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if books == nil {
		books = []entity.Book{}
	}
	return books, nil
}

func (u *BookUsecase) GetByISBN(ctx context.Context, isbn string) (entity.Book, error) {
	return u.repo.GetByISBN(ctx, isbn)
}

func (u *BookUsecase) GetByCategory(ctx context.Context, category string) (entity.Book, error) {
	return u.repo.GetByCategory(ctx, category)
}

// ListByLanguage returns ErrNotFound when nothing matches, like the keyed lookups.
func (u *BookUsecase) ListByLanguage(ctx context.Context, language string) ([]entity.Book, error) {
	books, err := u.repo.ListByLanguage(ctx, language)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, &NotFoundError{Entity: "book", Field: "language", Key: language}
	}
	return books, nil
}

// Create stores the book as given and returns once the write has committed.
func (u *BookUsecase) Create(ctx context.Context, book entity.Book) (entity.Book, error) {
	book.Normalize()
	if err := u.repo.Create(ctx, &book); err != nil {
		return entity.Book{}, fmt.Errorf("create book: %w", err)
	}
	return book, nil
}

// UpdateTitle replaces the title and leaves every other field untouched.
func (u *BookUsecase) UpdateTitle(ctx context.Context, isbn, title string) (entity.Book, error) {
	return u.repo.Update(ctx, isbn, func(b *entity.Book) error {
		b.Title = title
		return nil
	})
}

func (u *BookUsecase) Delete(ctx context.Context, isbn string) (entity.Book, error) {
	return u.repo.Delete(ctx, isbn)
}
