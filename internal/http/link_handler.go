package http

import (
	"net/http"
	"strconv"

	"booky/internal/httpx"
	"booky/internal/usecase"
)

// LinkHandler serves the routes that edit book cross-references.
type LinkHandler struct {
	links *usecase.LinkUsecase
}

func NewLinkHandler(links *usecase.LinkUsecase) *LinkHandler {
	return &LinkHandler{links: links}
}

// @Summary Link author to book
// @Description Add the author to the book and the book to the author
// @Tags links
// @Accept json
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Param body body linkAuthorRequest true "Author id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /book/author/update/{isbn} [put]
func (h *LinkHandler) AddAuthor(w http.ResponseWriter, r *http.Request) {
	var req linkAuthorRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	link, err := h.links.AddAuthor(r.Context(), r.PathValue("isbn"), int(*req.NewAuthor))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"books":   link.Book,
		"author":  link.Author,
		"message": "New Author was added",
	})
}

// @Summary Link publication to book
// @Description Add the book to the publication and the publication to the book; pubID may be a number, a string or a list
// @Tags links
// @Accept json
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Param body body linkPublicationRequest true "Publication id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /publication/update/book/{isbn} [put]
func (h *LinkHandler) AddPublication(w http.ResponseWriter, r *http.Request) {
	var req linkPublicationRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	link, err := h.links.AddPublication(r.Context(), r.PathValue("isbn"), req.id())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"books":        link.Book,
		"publications": link.Publication,
		"message":      "successfully updated publication",
	})
}

// @Summary Unlink author from book
// @Description Remove the author from the book and the book from the author
// @Tags links
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Param authorId path int true "Author id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /book/delete/author/{isbn}/{authorId} [delete]
func (h *LinkHandler) RemoveAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := strconv.Atoi(r.PathValue("authorId"))
	if err != nil {
		writeError(w, r, badRequest("authorId must be a number"))
		return
	}

	link, err := h.links.RemoveAuthor(r.Context(), r.PathValue("isbn"), authorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"book":    link.Book,
		"author":  link.Author,
		"message": "Author was deleted!!!!",
	})
}
