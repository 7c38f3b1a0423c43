package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/internal/utils"
	"github.com/aitbenali/go-office-board/models"
)

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	employees, err := h.services.EmployeeService.GetAllEmployees(r.Context())
	if err != nil {
		log.Err(err).Msg("employee listing failed")
		h.respondMappedError(w, err)
		return
	}

	if employees == nil {
		employees = []models.Employee{}
	}
	utils.WriteJSON(w, employees, http.StatusOK)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	matricule := chi.URLParam(r, "matricule")
	employee, err := h.services.EmployeeService.GetEmployee(r.Context(), matricule)
	if err != nil {
		log.Err(err).Str("matricule", matricule).Msg("employee lookup failed")
		h.respondMappedError(w, err)
		return
	}

	utils.WriteJSON(w, employee, http.StatusOK)
}

func (h *Handler) addEmployee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var employee models.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, http.StatusBadRequest, "Invalid JSON was passed", err)
		return
	}

	if err := h.services.EmployeeService.CreateEmployee(r.Context(), employee); err != nil {
		log.Err(err).Str("matricule", employee.Matricule).Msg("employee creation failed")
		h.respondMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "employee added successfully"}, http.StatusCreated)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var employee models.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, http.StatusBadRequest, "Invalid JSON was passed", err)
		return
	}

	if err := h.services.EmployeeService.UpdateEmployee(r.Context(), employee); err != nil {
		log.Err(err).Str("matricule", employee.Matricule).Msg("employee update failed")
		h.respondMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "employee updated successfully"}, http.StatusOK)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	matricule := chi.URLParam(r, "matricule")
	if err := h.services.EmployeeService.DeleteEmployee(r.Context(), matricule); err != nil {
		log.Err(err).Str("matricule", matricule).Msg("employee deletion failed")
		h.respondMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "employee deleted successfully"}, http.StatusOK)
}
