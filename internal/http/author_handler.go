package http

import (
	"net/http"

	"booky/internal/httpx"
	"booky/internal/usecase"
)

type AuthorHandler struct {
	authors *usecase.AuthorUsecase
}

func NewAuthorHandler(authors *usecase.AuthorUsecase) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

// @Summary List authors
// @Description Get every author
// @Tags authors
// @Produce json
// @Success 200 {array} entity.Author
// @Failure 500 {object} httpx.ErrorResponse
// @Router /author [get]
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authors.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, authors)
}

// @Summary List authors of a book
// @Description Get the authors whose book list holds the ISBN
// @Tags authors
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} httpx.ErrorResponse
// @Router /author/book/{isbn} [get]
func (h *AuthorHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authors.ListByBook(r.Context(), r.PathValue("isbn"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"authors": authors})
}

// @Summary Create author
// @Description Add an author
// @Tags authors
// @Accept json
// @Produce json
// @Param body body newAuthorRequest true "Author to add"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /author/new [post]
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req newAuthorRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	author, err := h.authors.Create(r.Context(), *req.NewAuthor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"author":  author,
		"message": "Author was added !!!",
	})
}
