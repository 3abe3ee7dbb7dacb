package http

import (
	"net/http"

	"booky/internal/httpx"
	"booky/internal/usecase"
)

type BookHandler struct {
	books *usecase.BookUsecase
}

func NewBookHandler(books *usecase.BookUsecase) *BookHandler {
	return &BookHandler{books: books}
}

// @Summary List books
// @Description Get every book in the catalog
// @Tags books
// @Produce json
// @Success 200 {array} entity.Book
// @Failure 500 {object} httpx.ErrorResponse
// @Router / [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// @Summary Get book by ISBN
// @Description Get a single book by ISBN; an unknown ISBN answers 200 with an error body
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} httpx.ErrorResponse
// @Router /is/{isbn} [get]
func (h *BookHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	book, err := h.books.GetByISBN(r.Context(), r.PathValue("isbn"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"book": book})
}

// @Summary Get book by category
// @Description Get the first book listing the category
// @Tags books
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} httpx.ErrorResponse
// @Router /c/{category} [get]
func (h *BookHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	book, err := h.books.GetByCategory(r.Context(), r.PathValue("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"book": book})
}

// @Summary List books by language
// @Description Get every book written in the language
// @Tags books
// @Produce json
// @Param language path string true "Language code"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} httpx.ErrorResponse
// @Router /l/{language} [get]
func (h *BookHandler) ListByLanguage(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.ListByLanguage(r.Context(), r.PathValue("language"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"book": books})
}

// @Summary Create book
// @Description Add a book to the catalog
// @Tags books
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param body body newBookRequest true "Book to add"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 413 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /book/new [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req newBookRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	book, err := h.books.Create(r.Context(), *req.NewBook)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"books":   book,
		"message": "Book was added !!!",
	})
}

// @Summary Update book title
// @Description Replace the title of a book
// @Tags books
// @Accept json
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Param body body bookTitleRequest true "New title"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /book/update/{isbn} [put]
func (h *BookHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	var req bookTitleRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	book, err := h.books.UpdateTitle(r.Context(), r.PathValue("isbn"), *req.BookTitle)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"books": book})
}

// @Summary Delete book
// @Description Remove a book and drop it from every author and publication
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} httpx.ErrorResponse
// @Router /book/delete/{isbn} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	book, err := h.books.Delete(r.Context(), r.PathValue("isbn"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"Books": book})
}
