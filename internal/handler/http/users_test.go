package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/aitbenali/go-office-board/internal/service"
	"github.com/aitbenali/go-office-board/internal/utils"
	"github.com/aitbenali/go-office-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withCurrentUser attaches a user to the request the way the session guard
// does.
func withCurrentUser(req *http.Request, user models.User) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), utils.CurrentUserCtxKey, user))
}

// withURLParam attaches a chi route parameter to the request context,
// reusing the route context when one is already installed.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx, ok := req.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return req
}

func TestListAdmins_SanitizesUsers(t *testing.T) {
	code := "123456"
	auth := &mockAuthService{
		getAllUsersFn: func(_ context.Context, _ models.User) ([]models.User, error) {
			return []models.User{
				{ID: 1, Username: "amine", Email: "amine@example.com", IsAdmin: true, PasswordHash: "hash", TwoFACode: &code},
				{ID: 2, Username: "sara", Email: "sara@example.com"},
			}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/admins", nil)
	req = withCurrentUser(req, models.User{ID: 1, IsAdmin: true})
	rec := httptest.NewRecorder()

	h.listAdmins(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AdminListResponse
	decodeResponse(t, rec, &resp)
	assert.True(t, resp.Success)
	require.Len(t, resp.Admins, 2)
	assert.Equal(t, "amine", resp.Admins[0].Username)

	// credential and challenge state must never leak
	body := rec.Body.String()
	assert.NotContains(t, body, "hash")
	assert.NotContains(t, body, code)
}

func TestListAdmins_RequiresAdmin(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/admins", nil)
	req = withCurrentUser(req, models.User{ID: 2, IsAdmin: false})
	rec := httptest.NewRecorder()

	h.listAdmins(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateOwnProfile_TargetsActor(t *testing.T) {
	var gotTarget int64
	auth := &mockAuthService{
		updateProfileFn: func(_ context.Context, actor models.User, targetID int64, update service.ProfileUpdate) (models.User, error) {
			gotTarget = targetID
			return models.User{ID: targetID, Username: *update.Username}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPut, "/api/auth/profile", strings.NewReader(`{"username":"amine2"}`))
	req = withCurrentUser(req, models.User{ID: 7})
	rec := httptest.NewRecorder()

	h.updateOwnProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotTarget)

	var resp models.ProfileResponse
	decodeResponse(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "amine2", resp.User.Username)
}

func TestUpdateProfile_ByID(t *testing.T) {
	var gotTarget int64
	var gotActor models.User
	auth := &mockAuthService{
		updateProfileFn: func(_ context.Context, actor models.User, targetID int64, _ service.ProfileUpdate) (models.User, error) {
			gotActor = actor
			gotTarget = targetID
			return models.User{ID: targetID}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPut, "/api/auth/profile/3", strings.NewReader(`{"isAdmin":true}`))
	req = withCurrentUser(req, models.User{ID: 1, IsAdmin: true})
	req = withURLParam(req, "id", "3")
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), gotTarget)
	assert.Equal(t, int64(1), gotActor.ID)
}

func TestUpdateProfile_BadID(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPut, "/api/auth/profile/abc", strings.NewReader(`{}`))
	req = withCurrentUser(req, models.User{ID: 1})
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUser_Forbidden(t *testing.T) {
	auth := &mockAuthService{
		deleteUserFn: func(_ context.Context, _ models.User, _ int64) error {
			return service.ErrForbidden
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodDelete, "/api/auth/del/3", nil)
	req = withCurrentUser(req, models.User{ID: 7})
	req = withURLParam(req, "id", "3")
	rec := httptest.NewRecorder()

	h.deleteUser(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteUser_SelfDeletion(t *testing.T) {
	auth := &mockAuthService{
		deleteUserFn: func(_ context.Context, _ models.User, _ int64) error {
			return service.ErrSelfDeletion
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodDelete, "/api/auth/del/7", nil)
	req = withCurrentUser(req, models.User{ID: 7, IsAdmin: true})
	req = withURLParam(req, "id", "7")
	rec := httptest.NewRecorder()

	h.deleteUser(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.Response
	decodeResponse(t, rec, &resp)
	assert.Equal(t, "you cannot delete your own account", resp.Message)
}

func TestDeleteUser_Success(t *testing.T) {
	var gotTarget int64
	auth := &mockAuthService{
		deleteUserFn: func(_ context.Context, actor models.User, targetID int64) error {
			assert.True(t, actor.IsAdmin)
			gotTarget = targetID
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodDelete, "/api/auth/del/3", nil)
	req = withCurrentUser(req, models.User{ID: 1, IsAdmin: true})
	req = withURLParam(req, "id", "3")
	rec := httptest.NewRecorder()

	h.deleteUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), gotTarget)
}
