package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/internal/service"
	"github.com/aitbenali/go-office-board/internal/utils"
	"github.com/aitbenali/go-office-board/models"
)

// registerRequest is the JSON body of POST /api/auth/register.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// credentialsRequest is the JSON body shared by login and verification.
// Code is only read by the verification endpoint.
type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

func (r credentialsRequest) credentials() service.Credentials {
	return service.Credentials{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, http.StatusBadRequest, "Invalid JSON was passed", err)
		return
	}

	_, err := h.services.AuthService.Register(ctx, service.Credentials{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}, req.IsAdmin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid registration data provided")
			h.respondError(w, http.StatusBadRequest, "username, email and password are required", err)
			return
		case errors.Is(err, service.ErrUsernameTaken):
			log.Err(err).Msg("username already in use")
			h.respondError(w, http.StatusConflict, "username already in use", err)
			return
		case errors.Is(err, service.ErrEmailTaken):
			log.Err(err).Msg("email already in use")
			h.respondError(w, http.StatusConflict, "email already in use", err)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.respondError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
			return
		}
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "user registered successfully"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, http.StatusBadRequest, "Invalid JSON was passed", err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.credentials())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid login data provided")
			h.respondError(w, http.StatusBadRequest, "username, email and password are required", err)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
			h.respondError(w, http.StatusUnauthorized, "invalid credentials", err)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			h.respondError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Msg("verification code dispatched")

	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Message: "verification code sent to your email",
		Status:  true,
		UserID:  foundUser.ID,
	}, http.StatusOK)
}

func (h *Handler) verifyTwoFA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, http.StatusBadRequest, "Invalid JSON was passed", err)
		return
	}

	verifiedUser, pair, err := h.services.AuthService.VerifyTwoFA(ctx, req.credentials(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid verification data provided")
			h.respondError(w, http.StatusBadRequest, "username, email, password and code are required", err)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
			h.respondError(w, http.StatusUnauthorized, "invalid credentials", err)
			return
		case errors.Is(err, service.ErrInvalidCode):
			log.Err(err).Msg("invalid verification code")
			h.respondError(w, http.StatusUnauthorized, "invalid verification code", err)
			return
		case errors.Is(err, service.ErrCodeExpired):
			log.Err(err).Msg("verification code expired")
			h.respondError(w, http.StatusUnauthorized, "verification code expired", err)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during verification")
			h.respondError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
			return
		}
	}

	log.Debug().Int64("id", verifiedUser.ID).Msg("user successfully logged in")

	setSessionCookies(w, pair)
	utils.WriteJSON(w, models.VerifyResponse{
		Success:     true,
		AccessToken: pair.Access.SignedString,
		User:        verifiedUser.Public(),
	}, http.StatusOK)
}

// logout clears the session cookies. Tokens are stateless, so there is
// nothing to revoke server side: an access token lives out its remaining
// lifetime but the browser no longer presents it.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookies(w)
	utils.WriteJSON(w, models.Response{Success: true, Message: "logged out successfully"}, http.StatusOK)
}

// checkAuth reports the identity bound to the session cookie, re-read from
// the store so the projection reflects the current role even after an admin
// change. Unlike the guarded routes, every failure carries an explicit null
// user, which the frontend probes on load: a missing cookie yields 401, a
// token that fails validation yields 403, and a valid token whose account
// has since been deleted yields 200 with a null user.
func (h *Handler) checkAuth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	currentUser, err := h.resolveSessionUser(r)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoSessionCookie), errors.Is(err, ErrEmptySessionToken):
			log.Err(err).Msg("session check without a session cookie")
			utils.WriteJSON(w, models.CheckAuthResponse{Success: false, User: nil}, http.StatusUnauthorized)
		case errors.Is(err, service.ErrTokenExpired), errors.Is(err, service.ErrTokenInvalid):
			log.Err(err).Msg("session check with an unusable token")
			utils.WriteJSON(w, models.CheckAuthResponse{Success: false, User: nil}, http.StatusForbidden)
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("session check for a deleted account")
			utils.WriteJSON(w, models.CheckAuthResponse{Success: true, User: nil}, http.StatusOK)
		default:
			log.Err(err).Msg("session user lookup failed")
			h.respondError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
		}
		return
	}

	publicUser := currentUser.Public()
	utils.WriteJSON(w, models.CheckAuthResponse{Success: true, User: &publicUser}, http.StatusOK)
}
