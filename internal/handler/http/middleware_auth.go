package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/internal/service"
	"github.com/aitbenali/go-office-board/internal/utils"
	"github.com/aitbenali/go-office-board/models"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the access token from the "jwt" cookie, validates it via
// [service.AuthService.ParseAccessToken], re-reads the account from the
// store, and — on success — attaches the fresh [models.User] to the request
// context under [utils.CurrentUserCtxKey] before delegating to the next
// handler. Re-reading per request means a role change or deletion takes
// effect on the very next call, not when the token expires.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - No session cookie is present or its value is empty.
//   - The token is expired, malformed, or fails signature or issuer checks.
//   - The account the token refers to no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		currentUser, err := h.resolveSessionUser(r)
		if err != nil {
			switch {
			case errors.Is(err, ErrNoSessionCookie), errors.Is(err, ErrEmptySessionToken):
				log.Err(err).Send()
				h.respondError(w, http.StatusUnauthorized, "not authenticated", err)
			case errors.Is(err, service.ErrTokenExpired):
				log.Err(err).Msg("access token expired")
				h.respondError(w, http.StatusUnauthorized, "session expired", err)
			case errors.Is(err, service.ErrTokenInvalid):
				log.Err(err).Msg("error occurred during parsing token")
				h.respondError(w, http.StatusUnauthorized, "invalid token", err)
			case errors.Is(err, service.ErrInvalidCredentials):
				log.Err(err).Msg("session user no longer exists")
				h.respondError(w, http.StatusUnauthorized, "not authenticated", err)
			default:
				log.Err(err).Msg("session user lookup failed")
				h.respondError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
			}
			return
		}

		// Store the fresh user record in the context so that downstream
		// handlers see the current role without re-reading the store.
		ctx := context.WithValue(r.Context(), utils.CurrentUserCtxKey, currentUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolveSessionUser authenticates the request from its session cookie and
// returns the account re-read from the store. Failures surface as the cookie
// sentinels, [service.ErrTokenExpired], [service.ErrTokenInvalid] or
// [service.ErrInvalidCredentials].
func (h *Handler) resolveSessionUser(r *http.Request) (models.User, error) {
	tokenString, err := getTokenFromCookie(r)
	if err != nil {
		return models.User{}, err
	}

	ctx := r.Context()
	token, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	return h.services.AuthService.GetUserByID(ctx, token.UserID)
}

// getTokenFromCookie extracts the access token from the session cookie.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionCookie] — the request carries no "jwt" cookie.
//   - [ErrEmptySessionToken] — the cookie exists but its value is empty.
func getTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(accessCookieName)
	if err != nil {
		return "", ErrNoSessionCookie
	}

	if cookie.Value == "" {
		return "", ErrEmptySessionToken
	}

	return cookie.Value, nil
}
