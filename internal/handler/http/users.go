package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/internal/service"
	"github.com/aitbenali/go-office-board/internal/store"
	"github.com/aitbenali/go-office-board/internal/utils"
	"github.com/aitbenali/go-office-board/models"
)

// profileRequest is the JSON body of the profile update endpoints. Absent
// keys leave the corresponding column untouched.
type profileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsAdmin  *bool   `json:"isAdmin"`
}

func (r profileRequest) update() service.ProfileUpdate {
	return service.ProfileUpdate{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		IsAdmin:  r.IsAdmin,
	}
}

// listAdmins returns the sanitized projection of every account. Admins only.
func (h *Handler) listAdmins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "not authenticated", nil)
		return
	}

	users, err := h.services.AuthService.GetAllUsers(ctx, currentUser)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			log.Err(err).Int64("actor", currentUser.ID).Msg("account listing requires admin role")
			h.respondError(w, http.StatusForbidden, "admin role required", err)
			return
		}
		log.Err(err).Msg("user listing failed")
		h.respondError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
		return
	}

	admins := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		admins = append(admins, user.Public())
	}

	utils.WriteJSON(w, models.AdminListResponse{Success: true, Admins: admins}, http.StatusOK)
}

// updateOwnProfile edits the authenticated user's own account.
func (h *Handler) updateOwnProfile(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "not authenticated", nil)
		return
	}

	h.applyProfileUpdate(w, r, currentUser, currentUser.ID)
}

// updateProfile edits the account addressed by the path ID.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "not authenticated", nil)
		return
	}

	targetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		h.respondError(w, http.StatusBadRequest, "invalid user id", err)
		return
	}

	h.applyProfileUpdate(w, r, currentUser, targetID)
}

func (h *Handler) applyProfileUpdate(w http.ResponseWriter, r *http.Request, actor models.User, targetID int64) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, http.StatusBadRequest, "Invalid JSON was passed", err)
		return
	}

	updatedUser, err := h.services.AuthService.UpdateProfile(ctx, actor, targetID, req.update())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("nothing to update")
			h.respondError(w, http.StatusBadRequest, "nothing to update", err)
			return
		case errors.Is(err, service.ErrUsernameTaken):
			log.Err(err).Msg("identity already in use")
			h.respondError(w, http.StatusConflict, "username or email already in use", err)
			return
		case errors.Is(err, service.ErrForbidden):
			log.Err(err).Int64("actor", actor.ID).Msg("cross-account edit requires admin role")
			h.respondError(w, http.StatusForbidden, "admin role required", err)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("id", targetID).Msg("user not found")
			h.respondError(w, http.StatusNotFound, "user not found", err)
			return
		default:
			log.Err(err).Int64("id", targetID).Msg("profile update failed")
			h.respondError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
			return
		}
	}

	utils.WriteJSON(w, models.ProfileResponse{Success: true, User: updatedUser.Public()}, http.StatusOK)
}

// deleteUser removes the account addressed by the path ID. Admins only, and
// never the acting admin's own account.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "not authenticated", nil)
		return
	}

	targetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		h.respondError(w, http.StatusBadRequest, "invalid user id", err)
		return
	}

	if err := h.services.AuthService.DeleteUser(ctx, currentUser, targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			log.Err(err).Int64("actor", currentUser.ID).Msg("deletion requires admin role")
			h.respondError(w, http.StatusForbidden, "admin role required", err)
			return
		case errors.Is(err, service.ErrSelfDeletion):
			log.Err(err).Int64("actor", currentUser.ID).Msg("self-deletion rejected")
			h.respondError(w, http.StatusBadRequest, "you cannot delete your own account", err)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("id", targetID).Msg("user not found")
			h.respondError(w, http.StatusNotFound, "user not found", err)
			return
		default:
			log.Err(err).Int64("id", targetID).Msg("user deletion failed")
			h.respondError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
			return
		}
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "user deleted successfully"}, http.StatusOK)
}
