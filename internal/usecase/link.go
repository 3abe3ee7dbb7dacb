package usecase

import (
	"booky/internal/entity"
	"context"
)

// LinkUsecase maintains the book <-> author and book <-> publication
// back-references. Both sides of a link are written in one transaction.
type LinkUsecase struct {
	tx Transactor
}

func NewLinkUsecase(tx Transactor) *LinkUsecase {
	return &LinkUsecase{tx: tx}
}

type AuthorLink struct {
	Book   entity.Book
	Author entity.Author
}

type PublicationLink struct {
	Book        entity.Book
	Publication entity.Publication
}

// AddAuthor records authorID on the book and isbn on the author.
func (u *LinkUsecase) AddAuthor(ctx context.Context, isbn string, authorID int) (AuthorLink, error) {
	var out AuthorLink
	err := u.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		book, err := repos.Books.Update(ctx, isbn, func(b *entity.Book) error {
			b.AddAuthor(authorID)
			return nil
		})
		if err != nil {
			return err
		}
		author, err := repos.Authors.Update(ctx, authorID, func(a *entity.Author) error {
			a.AddBook(isbn)
			return nil
		})
		if err != nil {
			return err
		}
		out = AuthorLink{Book: book, Author: author}
		return nil
	})
	if err != nil {
		return AuthorLink{}, err
	}
	return out, nil
}

// RemoveAuthor drops authorID from the book and isbn from the author.
func (u *LinkUsecase) RemoveAuthor(ctx context.Context, isbn string, authorID int) (AuthorLink, error) {
	var out AuthorLink
	err := u.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		book, err := repos.Books.Update(ctx, isbn, func(b *entity.Book) error {
			b.RemoveAuthor(authorID)
			return nil
		})
		if err != nil {
			return err
		}
		author, err := repos.Authors.Update(ctx, authorID, func(a *entity.Author) error {
			a.RemoveBook(isbn)
			return nil
		})
		if err != nil {
			return err
		}
		out = AuthorLink{Book: book, Author: author}
		return nil
	})
	if err != nil {
		return AuthorLink{}, err
	}
	return out, nil
}

// AddPublication records pubID on the book and isbn on the publication.
func (u *LinkUsecase) AddPublication(ctx context.Context, isbn string, pubID int) (PublicationLink, error) {
	var out PublicationLink
	err := u.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		book, err := repos.Books.Update(ctx, isbn, func(b *entity.Book) error {
			b.AddPublication(pubID)
			return nil
		})
		if err != nil {
			return err
		}
		pub, err := repos.Publications.Update(ctx, pubID, func(p *entity.Publication) error {
			p.AddBook(isbn)
			return nil
		})
		if err != nil {
			return err
		}
		out = PublicationLink{Book: book, Publication: pub}
		return nil
	})
	if err != nil {
		return PublicationLink{}, err
	}
	return out, nil
}
