package usecase_test

import (
	"booky/internal/entity"
	"booky/internal/store/mocks"
	"booky/internal/usecase"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkFixture struct {
	tx      *mocks.MockTransactor
	books   *mocks.MockBookRepository
	authors *mocks.MockAuthorRepository
	pubs    *mocks.MockPublicationRepository
	uc      *usecase.LinkUsecase
}

func newLinkFixture(t *testing.T) *linkFixture {
	ctrl := gomock.NewController(t)
	f := &linkFixture{
		tx:      mocks.NewMockTransactor(ctrl),
		books:   mocks.NewMockBookRepository(ctrl),
		authors: mocks.NewMockAuthorRepository(ctrl),
		pubs:    mocks.NewMockPublicationRepository(ctrl),
	}
	f.uc = usecase.NewLinkUsecase(f.tx)

	repos := usecase.Repositories{Books: f.books, Authors: f.authors, Publications: f.pubs}
	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, usecase.Repositories) error) error {
			return fn(ctx, repos)
		})
	return f
}

func applyBook(b entity.Book) func(context.Context, string, func(*entity.Book) error) (entity.Book, error) {
	return func(_ context.Context, _ string, mutate func(*entity.Book) error) (entity.Book, error) {
		if err := mutate(&b); err != nil {
			return entity.Book{}, err
		}
		return b, nil
	}
}

func applyAuthor(a entity.Author) func(context.Context, int, func(*entity.Author) error) (entity.Author, error) {
	return func(_ context.Context, _ int, mutate func(*entity.Author) error) (entity.Author, error) {
		if err := mutate(&a); err != nil {
			return entity.Author{}, err
		}
		return a, nil
	}
}

func TestLinkUsecase_AddAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("both sides updated", func(t *testing.T) {
		f := newLinkFixture(t)
		f.books.EXPECT().Update(gomock.Any(), "123", gomock.Any()).
			DoAndReturn(applyBook(entity.Book{ISBN: "123", Authors: []int{1}}))
		f.authors.EXPECT().Update(gomock.Any(), 2, gomock.Any()).
			DoAndReturn(applyAuthor(entity.Author{ID: 2, Books: []string{}}))

		link, err := f.uc.AddAuthor(ctx, "123", 2)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, link.Book.Authors)
		assert.Equal(t, []string{"123"}, link.Author.Books)
	})

	t.Run("missing author aborts the unit", func(t *testing.T) {
		f := newLinkFixture(t)
		f.books.EXPECT().Update(gomock.Any(), "123", gomock.Any()).
			DoAndReturn(applyBook(entity.Book{ISBN: "123"}))
		f.authors.EXPECT().Update(gomock.Any(), 9, gomock.Any()).
			Return(entity.Author{}, usecase.AuthorNotFound(9))

		_, err := f.uc.AddAuthor(ctx, "123", 9)

		assert.ErrorIs(t, err, usecase.ErrNotFound)
		var nf *usecase.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "author", nf.Entity)
	})

	t.Run("missing book skips author write", func(t *testing.T) {
		f := newLinkFixture(t)
		f.books.EXPECT().Update(gomock.Any(), "404", gomock.Any()).
			Return(entity.Book{}, usecase.BookNotFound("404"))

		_, err := f.uc.AddAuthor(ctx, "404", 1)

		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})
}

func TestLinkUsecase_RemoveAuthor(t *testing.T) {
	ctx := context.Background()
	f := newLinkFixture(t)
	f.books.EXPECT().Update(gomock.Any(), "123", gomock.Any()).
		DoAndReturn(applyBook(entity.Book{ISBN: "123", Authors: []int{1, 2}}))
	f.authors.EXPECT().Update(gomock.Any(), 2, gomock.Any()).
		DoAndReturn(applyAuthor(entity.Author{ID: 2, Books: []string{"123", "456"}}))

	link, err := f.uc.RemoveAuthor(ctx, "123", 2)

	require.NoError(t, err)
	assert.Equal(t, []int{1}, link.Book.Authors)
	assert.Equal(t, []string{"456"}, link.Author.Books)
}

func TestLinkUsecase_AddPublication(t *testing.T) {
	ctx := context.Background()
	f := newLinkFixture(t)
	f.books.EXPECT().Update(gomock.Any(), "123", gomock.Any()).
		DoAndReturn(applyBook(entity.Book{ISBN: "123", Publications: []int{}}))
	f.pubs.EXPECT().Update(gomock.Any(), 1, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, mutate func(*entity.Publication) error) (entity.Publication, error) {
			p := entity.Publication{ID: 1, Books: []string{"123"}}
			if err := mutate(&p); err != nil {
				return entity.Publication{}, err
			}
			return p, nil
		})

	link, err := f.uc.AddPublication(ctx, "123", 1)

	require.NoError(t, err)
	assert.Equal(t, []int{1}, link.Book.Publications)
	assert.Equal(t, []string{"123"}, link.Publication.Books)
}
