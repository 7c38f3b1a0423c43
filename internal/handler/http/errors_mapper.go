package http

import (
	"errors"
	"net/http"

	"github.com/aitbenali/go-office-board/internal/service"
	"github.com/aitbenali/go-office-board/internal/store"
	"github.com/aitbenali/go-office-board/internal/utils"
	"github.com/aitbenali/go-office-board/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrInvalidCode:         http.StatusUnauthorized,
	service.ErrCodeExpired:         http.StatusUnauthorized,
	service.ErrTokenExpired:        http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusUnauthorized,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrSelfDeletion:        http.StatusBadRequest,
	service.ErrUsernameTaken:       http.StatusConflict,
	service.ErrEmailTaken:          http.StatusConflict,

	store.ErrUserAlreadyExists:       http.StatusConflict,
	store.ErrUserNotFound:            http.StatusNotFound,
	store.ErrEmployeeAlreadyExists:   http.StatusConflict,
	store.ErrEmployeeNotFound:        http.StatusNotFound,
	store.ErrBureauAlreadyExists:     http.StatusConflict,
	store.ErrBureauNotFound:          http.StatusNotFound,
	store.ErrAssignmentAlreadyExists: http.StatusConflict,
	store.ErrAssignmentNotFound:      http.StatusNotFound,
	store.ErrAssignmentReferences:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the uniform failure envelope. Internal detail is only
// attached in development mode; the message alone reaches production clients.
func (h *Handler) respondError(w http.ResponseWriter, status int, message string, err error) {
	resp := models.Response{Success: false, Message: message}
	if h.devMode && err != nil {
		resp.Error = err.Error()
	}

	utils.WriteJSON(w, resp, status)
}

// respondMappedError resolves the status from the error chain and uses the
// error's own message for well-known failures.
func (h *Handler) respondMappedError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	h.respondError(w, status, message, err)
}
