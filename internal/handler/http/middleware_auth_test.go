package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aitbenali/go-office-board/internal/service"
	"github.com/aitbenali/go-office-board/internal/utils"
	"github.com/aitbenali/go-office-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// guardProbe wraps a handler that records the user the guard attached.
func guardProbe(captured *models.User, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if u, ok := utils.GetCurrentUserFromContext(r.Context()); ok {
			*captured = u
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_NoCookie(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	var called bool
	var captured models.User
	guard := h.auth(guardProbe(&captured, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_EmptyCookie(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	var called bool
	var captured models.User
	guard := h.auth(guardProbe(&captured, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: accessCookieName, Value: ""})
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		parseAccessTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenExpired
		},
	}
	h := newHandlerWithAuth(t, auth)

	var called bool
	var captured models.User
	guard := h.auth(guardProbe(&captured, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: accessCookieName, Value: "stale.token"})
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	var resp models.Response
	decodeResponse(t, rec, &resp)
	assert.Equal(t, "session expired", resp.Message)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	// a bad signature is not an expired session and must not be
	// reported as one
	auth := &mockAuthService{
		parseAccessTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenInvalid
		},
	}
	h := newHandlerWithAuth(t, auth)

	var called bool
	var captured models.User
	guard := h.auth(guardProbe(&captured, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: accessCookieName, Value: "forged.token"})
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	var resp models.Response
	decodeResponse(t, rec, &resp)
	assert.Equal(t, "invalid token", resp.Message)
}

func TestAuthMiddleware_DeletedUser(t *testing.T) {
	auth := &mockAuthService{
		parseAccessTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 7}, nil
		},
		getUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newHandlerWithAuth(t, auth)

	var called bool
	var captured models.User
	guard := h.auth(guardProbe(&captured, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: accessCookieName, Value: "valid.token"})
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_AttachesFreshUser(t *testing.T) {
	// role read from the store, not from the token: promotions apply
	// to in-flight sessions immediately
	auth := &mockAuthService{
		parseAccessTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.token", tokenString)
			return models.Token{UserID: 7}, nil
		},
		getUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			require.Equal(t, int64(7), id)
			return models.User{ID: 7, Username: "amine", IsAdmin: true}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	var called bool
	var captured models.User
	guard := h.auth(guardProbe(&captured, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: accessCookieName, Value: "valid.token"})
	rec := httptest.NewRecorder()

	guard.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
	assert.Equal(t, int64(7), captured.ID)
	assert.True(t, captured.IsAdmin)
}
