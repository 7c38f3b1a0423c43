package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/internal/utils"
	"github.com/aitbenali/go-office-board/models"
)

func (h *Handler) listBureaux(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bureaux, err := h.services.BureauService.GetAllBureaux(r.Context())
	if err != nil {
		log.Err(err).Msg("bureau listing failed")
		h.respondMappedError(w, err)
		return
	}

	if bureaux == nil {
		bureaux = []models.Bureau{}
	}
	utils.WriteJSON(w, bureaux, http.StatusOK)
}

func (h *Handler) listBureauxGrouped(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	groups, err := h.services.BureauService.GetBureauxGroupedByNiveau(r.Context())
	if err != nil {
		log.Err(err).Msg("bureau grouping failed")
		h.respondMappedError(w, err)
		return
	}

	utils.WriteJSON(w, groups, http.StatusOK)
}

func (h *Handler) getBureau(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	numero, err := strconv.Atoi(chi.URLParam(r, "numero"))
	if err != nil {
		log.Err(err).Msg("invalid bureau number in path")
		h.respondError(w, http.StatusBadRequest, "invalid bureau number", err)
		return
	}

	bureau, err := h.services.BureauService.GetBureau(r.Context(), numero)
	if err != nil {
		log.Err(err).Int("numero", numero).Msg("bureau lookup failed")
		h.respondMappedError(w, err)
		return
	}

	utils.WriteJSON(w, bureau, http.StatusOK)
}

func (h *Handler) addBureau(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var bureau models.Bureau
	if err := json.NewDecoder(r.Body).Decode(&bureau); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, http.StatusBadRequest, "Invalid JSON was passed", err)
		return
	}

	if err := h.services.BureauService.CreateBureau(r.Context(), bureau); err != nil {
		log.Err(err).Int("numero", bureau.Numero).Msg("bureau creation failed")
		h.respondMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "bureau added successfully"}, http.StatusCreated)
}

func (h *Handler) updateBureau(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var bureau models.Bureau
	if err := json.NewDecoder(r.Body).Decode(&bureau); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, http.StatusBadRequest, "Invalid JSON was passed", err)
		return
	}

	if err := h.services.BureauService.UpdateBureau(r.Context(), bureau); err != nil {
		log.Err(err).Int("numero", bureau.Numero).Msg("bureau update failed")
		h.respondMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "bureau updated successfully"}, http.StatusOK)
}

func (h *Handler) deleteBureau(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	numero, err := strconv.Atoi(chi.URLParam(r, "numero"))
	if err != nil {
		log.Err(err).Msg("invalid bureau number in path")
		h.respondError(w, http.StatusBadRequest, "invalid bureau number", err)
		return
	}

	if err := h.services.BureauService.DeleteBureau(r.Context(), numero); err != nil {
		log.Err(err).Int("numero", numero).Msg("bureau deletion failed")
		h.respondMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "bureau deleted successfully"}, http.StatusOK)
}
