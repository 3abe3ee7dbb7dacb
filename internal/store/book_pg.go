package store

import (
	"booky/internal/entity"
	"booky/internal/usecase"
	"context"
	"time"
)

// BookPG keeps books as JSONB documents keyed by ISBN.
type BookPG struct {
	c pgCollection[entity.Book, *entity.Book]
}

func NewBookPG(db pgQuerier, timeout time.Duration) *BookPG {
	return &BookPG{c: pgCollection[entity.Book, *entity.Book]{db: db, coll: booksCollection, timeout: timeout}}
}

func (r *BookPG) List(ctx context.Context) ([]entity.Book, error) {
	return r.c.list(ctx, "TRUE")
}

func (r *BookPG) GetByISBN(ctx context.Context, isbn string) (entity.Book, error) {
	b, ok, err := r.c.first(ctx, "isbn = $1", isbn)
	if err != nil {
		return entity.Book{}, err
	}
	if !ok {
		return entity.Book{}, usecase.BookNotFound(isbn)
	}
	return b, nil
}

func (r *BookPG) GetByCategory(ctx context.Context, category string) (entity.Book, error) {
	b, ok, err := r.c.first(ctx, "doc->'category' @> jsonb_build_array($1::text)", category)
	if err != nil {
		return entity.Book{}, err
	}
	if !ok {
		return entity.Book{}, &usecase.NotFoundError{Entity: "book", Field: "category", Key: category}
	}
	return b, nil
}

func (r *BookPG) ListByLanguage(ctx context.Context, language string) ([]entity.Book, error) {
	return r.c.list(ctx, "strpos(doc->>'language', $1) > 0", language)
}

func (r *BookPG) Create(ctx context.Context, book *entity.Book) error {
	return r.c.insert(ctx, book.ISBN, book)
}

func (r *BookPG) Update(ctx context.Context, isbn string, mutate func(*entity.Book) error) (entity.Book, error) {
	b, ok, err := r.c.update(ctx, isbn, mutate, func(b *entity.Book) any { return b.ISBN })
	if err != nil {
		return entity.Book{}, err
	}
	if !ok {
		return entity.Book{}, usecase.BookNotFound(isbn)
	}
	return b, nil
}

func (r *BookPG) Delete(ctx context.Context, isbn string) (entity.Book, error) {
	b, ok, err := r.c.remove(ctx, isbn)
	if err != nil {
		return entity.Book{}, err
	}
	if !ok {
		return entity.Book{}, usecase.BookNotFound(isbn)
	}
	return b, nil
}
