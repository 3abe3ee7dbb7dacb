package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"booky/internal/entity"
	"booky/internal/store/mocks"
	"booky/internal/testutil"
	"booky/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	authors := mocks.NewMockAuthorRepository(ctrl)
	pubs := mocks.NewMockPublicationRepository(ctrl)
	ah := NewAuthorHandler(usecase.NewAuthorUsecase(authors))
	ph := NewPublicationHandler(usecase.NewPublicationUsecase(pubs))

	t.Run("list authors", func(t *testing.T) {
		authors.EXPECT().List(gomock.Any()).Return([]entity.Author{testutil.TestAuthor}, nil)

		w := serve("GET /author", ah.List, httptest.NewRequest(http.MethodGet, "/author", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"name":"pavan","books":["12345ONE","12345Two"]}]`, w.Body.String())
	})

	t.Run("authors by book", func(t *testing.T) {
		authors.EXPECT().ListByBook(gomock.Any(), "12345ONE").Return([]entity.Author{testutil.TestAuthor}, nil)

		w := serve("GET /author/book/{isbn}", ah.ListByBook, httptest.NewRequest(http.MethodGet, "/author/book/12345ONE", nil))
		resp := testutil.RecordHTTPResponse(w)

		var got []entity.Author
		require.NoError(t, testutil.DecodeField(resp.Raw, "authors", &got))
		assert.Equal(t, []entity.Author{testutil.TestAuthor}, got)
	})

	t.Run("authors by unknown book", func(t *testing.T) {
		authors.EXPECT().ListByBook(gomock.Any(), "nope").Return(nil, nil)

		w := serve("GET /author/book/{isbn}", ah.ListByBook, httptest.NewRequest(http.MethodGet, "/author/book/nope", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"error":"No author found for the book of nope"}`, w.Body.String())
	})

	t.Run("create author", func(t *testing.T) {
		authors.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *entity.Author) error {
			assert.Equal(t, []string{}, a.Books)
			return nil
		})

		r := testutil.NewRequest(http.MethodPost, "/author/new", map[string]any{"newAuthor": map[string]any{"id": 3, "name": "Ann"}})
		w := serve("POST /author/new", ah.Create, r)
		resp := testutil.RecordHTTPResponse(w)

		assert.Equal(t, "Author was added !!!", resp.Body["message"])
		var got entity.Author
		require.NoError(t, testutil.DecodeField(resp.Raw, "author", &got))
		assert.Equal(t, entity.Author{ID: 3, Name: "Ann", Books: []string{}}, got)
	})

	t.Run("list publications", func(t *testing.T) {
		pubs.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := serve("GET /publications", ph.List, httptest.NewRequest(http.MethodGet, "/publications", nil))

		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("create publication", func(t *testing.T) {
		pubs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		r := testutil.NewRequest(http.MethodPost, "/publication/new", map[string]any{"newPublication": testutil.TestPublicationTwo})
		w := serve("POST /publication/new", ph.Create, r)
		resp := testutil.RecordHTTPResponse(w)

		assert.Equal(t, "publication was added !!!", resp.Body["message"])
		var got entity.Publication
		require.NoError(t, testutil.DecodeField(resp.Raw, "publication", &got))
		assert.Equal(t, testutil.TestPublicationTwo, got)
	})

	t.Run("create publication without envelope", func(t *testing.T) {
		r := testutil.NewRequest(http.MethodPost, "/publication/new", map[string]any{"name": "x"})
		w := serve("POST /publication/new", ph.Create, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"newPublication is required"}`, w.Body.String())
	})

	t.Run("form body rejected for documents", func(t *testing.T) {
		r := testutil.NewFormRequest(http.MethodPost, "/publication/new", nil)
		w := serve("POST /publication/new", ph.Create, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
