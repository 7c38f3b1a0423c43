package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers every credential failure of the login
	// phase: unknown username, unknown email, and a wrong password all map
	// here so that responses cannot be used to probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken and ErrEmailTaken are returned by registration when
	// the requested identity collides with an existing account.
	ErrUsernameTaken = errors.New("username already in use")
	ErrEmailTaken    = errors.New("email already in use")

	// ErrInvalidCode is returned when the submitted two-factor code does not
	// match the pending one, or when no code is pending at all.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrCodeExpired is returned when the submitted code matches but its
	// validity window has closed.
	ErrCodeExpired = errors.New("verification code expired")

	// ErrTokenExpired is returned when an access token's signature checks
	// out but its lifetime has run out. ErrTokenInvalid covers every other
	// validation failure: tampering, malformation, wrong issuer. The guard
	// reports the two with different messages.
	ErrTokenExpired = errors.New("token is expired")
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrForbidden is returned when the acting user lacks the admin role
	// required for the requested operation.
	ErrForbidden = errors.New("operation requires admin role")

	// ErrSelfDeletion is returned when a user attempts to delete their own
	// account through the admin deletion endpoint.
	ErrSelfDeletion = errors.New("cannot delete own account")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
