package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aitbenali/go-office-board/internal/config"
	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/internal/service"
	"github.com/aitbenali/go-office-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn         func(ctx context.Context, creds service.Credentials, isAdmin bool) (models.User, error)
	loginFn            func(ctx context.Context, creds service.Credentials) (models.User, error)
	verifyTwoFAFn      func(ctx context.Context, creds service.Credentials, code string) (models.User, models.TokenPair, error)
	parseAccessTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
	getUserByIDFn      func(ctx context.Context, id int64) (models.User, error)
	getAllUsersFn      func(ctx context.Context, actor models.User) ([]models.User, error)
	updateProfileFn    func(ctx context.Context, actor models.User, targetID int64, update service.ProfileUpdate) (models.User, error)
	deleteUserFn       func(ctx context.Context, actor models.User, targetID int64) error
}

func (m *mockAuthService) Register(ctx context.Context, creds service.Credentials, isAdmin bool) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, creds, isAdmin)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, creds service.Credentials) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, creds)
	}
	return models.User{}, nil
}

func (m *mockAuthService) VerifyTwoFA(ctx context.Context, creds service.Credentials, code string) (models.User, models.TokenPair, error) {
	if m.verifyTwoFAFn != nil {
		return m.verifyTwoFAFn(ctx, creds, code)
	}
	return models.User{}, models.TokenPair{}, nil
}

func (m *mockAuthService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseAccessTokenFn != nil {
		return m.parseAccessTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenInvalid
}

func (m *mockAuthService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, id)
	}
	return models.User{}, service.ErrInvalidCredentials
}

func (m *mockAuthService) GetAllUsers(ctx context.Context, actor models.User) ([]models.User, error) {
	if m.getAllUsersFn != nil {
		return m.getAllUsersFn(ctx, actor)
	}
	if !actor.IsAdmin {
		return nil, service.ErrForbidden
	}
	return nil, nil
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, actor models.User, targetID int64, update service.ProfileUpdate) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, actor, targetID, update)
	}
	return models.User{}, nil
}

func (m *mockAuthService) DeleteUser(ctx context.Context, actor models.User, targetID int64) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, actor, targetID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given service bundle with
// development mode off and a fixed frontend origin.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, config.App{FrontendOrigin: "http://localhost:3000"}, logger.Nop())
}

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{AuthService: auth})
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeResponse unmarshals the recorded response body into dst.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

// cookieByName finds a Set-Cookie entry on the recorded response.
func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

var validCredentials = credentialsRequest{
	Username: "amine",
	Email:    "amine@example.com",
	Password: "s3cret",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Created(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, creds service.Credentials, isAdmin bool) (models.User, error) {
			assert.Equal(t, "amine", creds.Username)
			assert.False(t, isAdmin)
			return models.User{ID: 1, Username: creds.Username, Email: creds.Email}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Response
	decodeResponse(t, rec, &resp)
	assert.True(t, resp.Success)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_UsernameConflict(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ service.Credentials, _ bool) (models.User, error) {
			return models.User{}, service.ErrUsernameTaken
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp models.Response
	decodeResponse(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "username already in use", resp.Message)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_DispatchesCode(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, creds service.Credentials) (models.User, error) {
			return models.User{ID: 7, Username: creds.Username, Email: creds.Email}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	decodeResponse(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.True(t, resp.Status)
	assert.Equal(t, int64(7), resp.UserID)

	// phase one must not install session cookies
	assert.Nil(t, cookieByName(rec, accessCookieName))
	assert.Nil(t, cookieByName(rec, refreshCookieName))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ service.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.Response
	decodeResponse(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid credentials", resp.Message)
	assert.Empty(t, resp.Error) // internal detail suppressed outside dev mode
}

// ─────────────────────────────────────────────
// verify-2fa
// ─────────────────────────────────────────────

func TestVerifyTwoFA_SetsSessionCookies(t *testing.T) {
	pair := models.TokenPair{
		Access:  models.Token{SignedString: "signed.access.token"},
		Refresh: models.Token{SignedString: "signed.refresh.token"},
	}
	auth := &mockAuthService{
		verifyTwoFAFn: func(_ context.Context, creds service.Credentials, code string) (models.User, models.TokenPair, error) {
			assert.Equal(t, "123456", code)
			return models.User{ID: 7, Username: creds.Username, Email: creds.Email, IsAdmin: true}, pair, nil
		},
	}

	body := validCredentials
	body.Code = "123456"

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-2fa", strings.NewReader(jsonBody(t, body)))
	rec := httptest.NewRecorder()

	h.verifyTwoFA(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	access := cookieByName(rec, accessCookieName)
	require.NotNil(t, access)
	assert.Equal(t, "signed.access.token", access.Value)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, accessCookieMaxAge, access.MaxAge)

	refresh := cookieByName(rec, refreshCookieName)
	require.NotNil(t, refresh)
	assert.Equal(t, "signed.refresh.token", refresh.Value)
	assert.Equal(t, refreshCookieMaxAge, refresh.MaxAge)

	var resp models.VerifyResponse
	decodeResponse(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "signed.access.token", resp.AccessToken)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.True(t, resp.User.IsAdmin)
}

func TestVerifyTwoFA_WrongCode(t *testing.T) {
	auth := &mockAuthService{
		verifyTwoFAFn: func(_ context.Context, _ service.Credentials, _ string) (models.User, models.TokenPair, error) {
			return models.User{}, models.TokenPair{}, service.ErrInvalidCode
		},
	}

	body := validCredentials
	body.Code = "000000"

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-2fa", strings.NewReader(jsonBody(t, body)))
	rec := httptest.NewRecorder()

	h.verifyTwoFA(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.Response
	decodeResponse(t, rec, &resp)
	assert.Equal(t, "invalid verification code", resp.Message)
	assert.Nil(t, cookieByName(rec, accessCookieName))
}

func TestVerifyTwoFA_ExpiredCode(t *testing.T) {
	auth := &mockAuthService{
		verifyTwoFAFn: func(_ context.Context, _ service.Credentials, _ string) (models.User, models.TokenPair, error) {
			return models.User{}, models.TokenPair{}, service.ErrCodeExpired
		},
	}

	body := validCredentials
	body.Code = "123456"

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-2fa", strings.NewReader(jsonBody(t, body)))
	rec := httptest.NewRecorder()

	h.verifyTwoFA(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.Response
	decodeResponse(t, rec, &resp)
	assert.Equal(t, "verification code expired", resp.Message)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_ClearsCookies(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	access := cookieByName(rec, accessCookieName)
	require.NotNil(t, access)
	assert.Empty(t, access.Value)
	assert.Equal(t, -1, access.MaxAge)

	refresh := cookieByName(rec, refreshCookieName)
	require.NotNil(t, refresh)
	assert.Equal(t, -1, refresh.MaxAge)
}

// ─────────────────────────────────────────────
// check
// ─────────────────────────────────────────────

func TestCheckAuth_ReturnsCurrentUser(t *testing.T) {
	currentUser := models.User{ID: 7, Username: "amine", Email: "amine@example.com", IsAdmin: true}
	auth := &mockAuthService{
		parseAccessTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 7}, nil
		},
		getUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			require.Equal(t, int64(7), id)
			return currentUser, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "some-access-token"})
	rec := httptest.NewRecorder()

	h.checkAuth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CheckAuthResponse
	decodeResponse(t, rec, &resp)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.True(t, resp.User.IsAdmin)
}

func TestCheckAuth_NoCookieYieldsNullUser(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	rec := httptest.NewRecorder()

	h.checkAuth(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user":null`)

	var resp models.CheckAuthResponse
	decodeResponse(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Nil(t, resp.User)
}

func TestCheckAuth_BadTokenYieldsForbidden(t *testing.T) {
	// invalid and expired tokens answer 403, unlike the missing-cookie 401
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "forged-access-token"})
	rec := httptest.NewRecorder()

	h.checkAuth(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user":null`)
}

func TestCheckAuth_ExpiredTokenYieldsForbidden(t *testing.T) {
	auth := &mockAuthService{
		parseAccessTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenExpired
		},
	}
	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "stale-access-token"})
	rec := httptest.NewRecorder()

	h.checkAuth(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user":null`)
}

func TestCheckAuth_DeletedAccountYieldsNullUser(t *testing.T) {
	// the token still verifies, so the probe succeeds with no identity
	auth := &mockAuthService{
		parseAccessTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 7}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "orphaned-access-token"})
	rec := httptest.NewRecorder()

	h.checkAuth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user":null`)

	var resp models.CheckAuthResponse
	decodeResponse(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.User)
}
