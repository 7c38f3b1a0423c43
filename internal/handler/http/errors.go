package http

import "errors"

// Sentinel errors used by the session guard when inspecting the request's
// cookies. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the auth middleware when the
	// incoming request carries no session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrEmptySessionToken is returned when the session cookie exists but
	// its value is an empty string.
	ErrEmptySessionToken = errors.New("empty session token")
)
