package http

import (
	"net/http"
	"time"

	"github.com/aitbenali/go-office-board/models"
)

// Cookie names mirror what the frontend expects: the access token travels in
// "jwt", the refresh token in "refreshToken".
const (
	accessCookieName  = "jwt"
	refreshCookieName = "refreshToken"

	accessCookieMaxAge  = int(time.Hour / time.Second)
	refreshCookieMaxAge = int(48 * time.Hour / time.Second)
)

// setSessionCookies installs both session tokens as HttpOnly cookies. The
// Lax SameSite mode keeps the cookies on top-level navigations while still
// blocking cross-site subrequest leakage.
func setSessionCookies(w http.ResponseWriter, pair models.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessCookieName,
		Value:    pair.Access.SignedString,
		Path:     "/",
		MaxAge:   accessCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    pair.Refresh.SignedString,
		Path:     "/",
		MaxAge:   refreshCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookies expires both session cookies immediately.
func clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{accessCookieName, refreshCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
