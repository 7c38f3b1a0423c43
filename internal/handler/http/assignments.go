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

func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	assignments, err := h.services.AssignmentService.GetAllAssignments(r.Context())
	if err != nil {
		log.Err(err).Msg("assignment listing failed")
		h.respondMappedError(w, err)
		return
	}

	if assignments == nil {
		assignments = []models.Assignment{}
	}
	utils.WriteJSON(w, assignments, http.StatusOK)
}

func (h *Handler) addAssignment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var assignment models.Assignment
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, http.StatusBadRequest, "Invalid JSON was passed", err)
		return
	}

	if err := h.services.AssignmentService.CreateAssignment(r.Context(), assignment); err != nil {
		log.Err(err).Str("matricule", assignment.Matricule).Int("numero", assignment.Numero).Msg("assignment creation failed")
		h.respondMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "assignment added successfully"}, http.StatusCreated)
}

func (h *Handler) updateAssignment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	matricule := chi.URLParam(r, "matricule")
	numero, err := strconv.Atoi(chi.URLParam(r, "numero"))
	if err != nil {
		log.Err(err).Msg("invalid bureau number in path")
		h.respondError(w, http.StatusBadRequest, "invalid bureau number", err)
		return
	}

	var assignment models.Assignment
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, http.StatusBadRequest, "Invalid JSON was passed", err)
		return
	}

	if err := h.services.AssignmentService.UpdateAssignment(r.Context(), matricule, numero, assignment); err != nil {
		log.Err(err).Str("matricule", matricule).Int("numero", numero).Msg("assignment update failed")
		h.respondMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "assignment updated successfully"}, http.StatusOK)
}

func (h *Handler) deleteAssignment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	matricule := chi.URLParam(r, "matricule")
	numero, err := strconv.Atoi(chi.URLParam(r, "numero"))
	if err != nil {
		log.Err(err).Msg("invalid bureau number in path")
		h.respondError(w, http.StatusBadRequest, "invalid bureau number", err)
		return
	}

	if err := h.services.AssignmentService.DeleteAssignment(r.Context(), matricule, numero); err != nil {
		log.Err(err).Str("matricule", matricule).Int("numero", numero).Msg("assignment deletion failed")
		h.respondMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "assignment deleted successfully"}, http.StatusOK)
}
