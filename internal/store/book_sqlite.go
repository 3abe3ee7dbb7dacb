package store

import (
	"booky/internal/entity"
	"booky/internal/usecase"
	"context"
	"time"
)

// BookSQLite keeps books as JSON text documents keyed by ISBN.
type BookSQLite struct {
	c sqliteCollection[entity.Book, *entity.Book]
}

func NewBookSQLite(db sqlQuerier, timeout time.Duration) *BookSQLite {
	return &BookSQLite{c: sqliteCollection[entity.Book, *entity.Book]{db: db, coll: booksCollection, timeout: timeout}}
}

func (r *BookSQLite) List(ctx context.Context) ([]entity.Book, error) {
	return r.c.list(ctx, "1 = 1")
}

func (r *BookSQLite) GetByISBN(ctx context.Context, isbn string) (entity.Book, error) {
	b, ok, err := r.c.first(ctx, "isbn = ?", isbn)
	if err != nil {
		return entity.Book{}, err
	}
	if !ok {
		return entity.Book{}, usecase.BookNotFound(isbn)
	}
	return b, nil
}

func (r *BookSQLite) GetByCategory(ctx context.Context, category string) (entity.Book, error) {
	b, ok, err := r.c.first(ctx, "EXISTS (SELECT 1 FROM json_each(books.doc, '$.category') c WHERE c.value = ?)", category)
	if err != nil {
		return entity.Book{}, err
	}
	if !ok {
		return entity.Book{}, &usecase.NotFoundError{Entity: "book", Field: "category", Key: category}
	}
	return b, nil
}

func (r *BookSQLite) ListByLanguage(ctx context.Context, language string) ([]entity.Book, error) {
	return r.c.list(ctx, "instr(json_extract(doc, '$.language'), ?) > 0", language)
}

func (r *BookSQLite) Create(ctx context.Context, book *entity.Book) error {
	return r.c.insert(ctx, book.ISBN, book)
}

func (r *BookSQLite) Update(ctx context.Context, isbn string, mutate func(*entity.Book) error) (entity.Book, error) {
	b, ok, err := r.c.update(ctx, isbn, mutate, func(b *entity.Book) any { return b.ISBN })
	if err != nil {
		return entity.Book{}, err
	}
	if !ok {
		return entity.Book{}, usecase.BookNotFound(isbn)
	}
	return b, nil
}

func (r *BookSQLite) Delete(ctx context.Context, isbn string) (entity.Book, error) {
	b, ok, err := r.c.remove(ctx, isbn)
	if err != nil {
		return entity.Book{}, err
	}
	if !ok {
		return entity.Book{}, usecase.BookNotFound(isbn)
	}
	return b, nil
}
