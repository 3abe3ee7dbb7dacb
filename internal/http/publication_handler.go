package http

import (
	"net/http"

	"booky/internal/httpx"
	"booky/internal/usecase"
)

type PublicationHandler struct {
	publications *usecase.PublicationUsecase
}

func NewPublicationHandler(publications *usecase.PublicationUsecase) *PublicationHandler {
	return &PublicationHandler{publications: publications}
}

// @Summary List publications
// @Description Get every publication
// @Tags publications
// @Produce json
// @Success 200 {array} entity.Publication
// @Failure 500 {object} httpx.ErrorResponse
// @Router /publications [get]
func (h *PublicationHandler) List(w http.ResponseWriter, r *http.Request) {
	pubs, err := h.publications.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, pubs)
}

// @Summary Create publication
// @Description Add a publication
// @Tags publications
// @Accept json
// @Produce json
// @Param body body newPublicationRequest true "Publication to add"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /publication/new [post]
func (h *PublicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req newPublicationRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	pub, err := h.publications.Create(r.Context(), *req.NewPublication)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"publication": pub,
		"message":     "publication was added !!!",
	})
}
