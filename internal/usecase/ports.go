package usecase

import (
	"booky/internal/entity"
	"context"
)

//go:generate mockgen -destination=../store/mocks/mock_ports.go -package=mocks booky/internal/usecase BookRepository,AuthorRepository,PublicationRepository,Transactor

// BookRepository is the book collection. Lookups by key return the first
// matching document in insertion order.
type BookRepository interface {
	List(ctx context.Context) ([]entity.Book, error)
	GetByISBN(ctx context.Context, isbn string) (entity.Book, error)
	GetByCategory(ctx context.Context, category string) (entity.Book, error)
	// ListByLanguage matches books whose language contains the given value.
	ListByLanguage(ctx context.Context, language string) ([]entity.Book, error)
	Create(ctx context.Context, book *entity.Book) error
	// Update locks the first book with the ISBN, applies mutate and writes
	// the result back. Returns ErrNotFound when no book matches.
	Update(ctx context.Context, isbn string, mutate func(*entity.Book) error) (entity.Book, error)
	// Delete removes the first book with the ISBN and returns it.
	Delete(ctx context.Context, isbn string) (entity.Book, error)
}

type AuthorRepository interface {
	List(ctx context.Context) ([]entity.Author, error)
	ListByBook(ctx context.Context, isbn string) ([]entity.Author, error)
	Create(ctx context.Context, author *entity.Author) error
	Update(ctx context.Context, id int, mutate func(*entity.Author) error) (entity.Author, error)
}

type PublicationRepository interface {
	List(ctx context.Context) ([]entity.Publication, error)
	Create(ctx context.Context, publication *entity.Publication) error
	Update(ctx context.Context, id int, mutate func(*entity.Publication) error) (entity.Publication, error)
}

// Repositories are the collections bound to one unit of work.
type Repositories struct {
	Books        BookRepository
	Authors      AuthorRepository
	Publications PublicationRepository
}

// Transactor runs fn inside a single store transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
