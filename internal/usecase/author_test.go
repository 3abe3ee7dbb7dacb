package usecase_test

import (
	"booky/internal/entity"
	"booky/internal/store/mocks"
	"booky/internal/usecase"
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorUsecase_ListByBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAuthorRepository(ctrl)
	uc := usecase.NewAuthorUsecase(repo)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo.EXPECT().ListByBook(ctx, "123").Return([]entity.Author{{ID: 1, Books: []string{"123"}}}, nil)

		authors, err := uc.ListByBook(ctx, "123")

		require.NoError(t, err)
		assert.Equal(t, 1, authors[0].ID)
	})

	t.Run("none", func(t *testing.T) {
		repo.EXPECT().ListByBook(ctx, "999").Return(nil, nil)

		_, err := uc.ListByBook(ctx, "999")

		var nf *usecase.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "No author found for the book of 999", nf.Message())
	})
}

func TestAuthorUsecase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAuthorRepository(ctrl)
	uc := usecase.NewAuthorUsecase(repo)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, &entity.Author{ID: 2, Name: "Ada", Books: []string{}}).Return(nil)

	author, err := uc.Create(ctx, entity.Author{ID: 2, Name: "Ada"})

	require.NoError(t, err)
	assert.Equal(t, []string{}, author.Books)
}

func TestPublicationUsecase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPublicationRepository(ctrl)
	uc := usecase.NewPublicationUsecase(repo)
	ctx := context.Background()

	repo.EXPECT().List(ctx).Return(nil, nil)

	pubs, err := uc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, []entity.Publication{}, pubs)
}
