package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, the credential hash, and the transient
// two-factor challenge state. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned by the database.
	ID int64 `json:"id"`

	// Username is the unique login name of the user.
	Username string `json:"username"`

	// Email is the unique address the two-factor code is delivered to.
	Email string `json:"email"`

	// PasswordHash stores the argon2id-derived representation of the
	// user's password. Never plaintext, never serialized.
	PasswordHash string `json:"-"`

	// IsAdmin marks users allowed to manage other accounts.
	IsAdmin bool `json:"isAdmin"`

	// TwoFACode is the pending verification code, nil when no login
	// attempt is in flight. Set on every login, cleared on successful
	// verification.
	TwoFACode *string `json:"-"`

	// TwoFACodeExpiresAt is the expiry of TwoFACode. Non-nil exactly when
	// TwoFACode is non-nil.
	TwoFACodeExpiresAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// Public returns the sanitized projection of the user that is safe to hand
// to clients: identity and role, no credential or challenge state.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the client-facing projection of a [User].
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// UserUpdate is the exhaustive set of columns a profile update may touch.
// Nil fields are left unchanged. Because the columns are enumerated here and
// in the store's update builder, caller-supplied JSON keys can never target
// an unintended column.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	IsAdmin      *bool
}

// Empty reports whether the update would change nothing.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.PasswordHash == nil && u.IsAdmin == nil
}
