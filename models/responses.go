package models

// Response is the uniform JSON envelope returned by the API for
// acknowledgements and failures.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	// Error carries internal failure detail. Populated only when the
	// server runs in development mode; suppressed otherwise.
	Error string `json:"error,omitempty"`
}

// LoginResponse acknowledges phase one of the login flow: the credentials
// were accepted and a verification code was dispatched. No session tokens
// are issued at this point.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  bool   `json:"status"`
	UserID  int64  `json:"userId"`
}

// VerifyResponse completes the login flow: the access token is returned in
// the body alongside the sanitized user projection, while both tokens are
// also set as cookies.
type VerifyResponse struct {
	Success     bool       `json:"success"`
	AccessToken string     `json:"accessToken"`
	User        PublicUser `json:"user"`
}

// CheckAuthResponse reports the identity bound to the presented access
// token, re-read from the store. User is null when no valid session exists
// or the account has been deleted.
type CheckAuthResponse struct {
	Success bool        `json:"success"`
	User    *PublicUser `json:"user"`
}

// AdminListResponse lists every account's sanitized projection.
type AdminListResponse struct {
	Success bool         `json:"success"`
	Admins  []PublicUser `json:"admins"`
}

// ProfileResponse returns the state of a profile after an update.
type ProfileResponse struct {
	Success bool       `json:"success"`
	User    PublicUser `json:"user"`
}
