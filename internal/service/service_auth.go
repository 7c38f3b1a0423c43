package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aitbenali/go-office-board/internal/config"
	"github.com/aitbenali/go-office-board/internal/crypto"
	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/internal/mailer"
	"github.com/aitbenali/go-office-board/internal/store"
	"github.com/aitbenali/go-office-board/internal/utils"
	"github.com/aitbenali/go-office-board/models"
)

// authService is the concrete implementation of AuthService. It handles
// registration, the two-phase email login, JWT lifecycle and account
// administration, using a UserRepository for persistence, argon2id for
// password hashing and a mailer.Sender for code delivery.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies argon2id password hashes.
	hasher crypto.PasswordHasher

	// sender delivers two-factor codes out of band.
	sender mailer.Sender

	// accessSignKey and refreshSignKey are the independent HMAC secrets
	// for the two token kinds. A leaked refresh secret must not allow
	// forging access tokens, hence two keys.
	accessSignKey  string
	refreshSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessDuration and refreshDuration control token lifetimes.
	accessDuration  time.Duration
	refreshDuration time.Duration

	// codeTTL is the validity window of an emailed verification code.
	codeTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repository,
// hasher and mail sender, with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, sender mailer.Sender, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		hasher:          hasher,
		sender:          sender,
		accessSignKey:   cfg.AccessTokenSignKey,
		refreshSignKey:  cfg.RefreshTokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		accessDuration:  cfg.AccessTokenDuration,
		refreshDuration: cfg.RefreshTokenDuration,
		codeTTL:         cfg.TwoFACodeTTL,
		logger:          logger,
	}
}

// Register creates a new account with an argon2id-hashed password.
//
// Username and email are checked for availability before the INSERT so the
// caller can be told which of the two collides. The INSERT itself still maps
// a unique violation (lost race) to the same taken errors.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if any credential field is empty.
//   - ErrUsernameTaken / ErrEmailTaken on identity collision.
func (a *authService) Register(ctx context.Context, creds Credentials, isAdmin bool) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Email == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if _, err := a.userRepository.FindUserByUsername(ctx, creds.Username); err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("username availability check failed: %w", err)
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, creds.Email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("email availability check failed: %w", err)
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     creds.Username,
		Email:        creds.Email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.User{}, ErrUsernameTaken
		}
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login performs the first authentication phase.
//
// The credential triple is verified as a whole: the account must match both
// username and email, and the password must verify against the stored hash.
// Every failure collapses into ErrInvalidCredentials. On success a fresh
// six-digit code is stored (overwriting any pending one) and emailed.
func (a *authService) Login(ctx context.Context, creds Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Email == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.verifyCredentials(ctx, creds)
	if err != nil {
		return models.User{}, err
	}

	code, err := utils.GenerateTwoFACode()
	if err != nil {
		log.Err(err).Msg("verification code generation failed")
		return models.User{}, fmt.Errorf("verification code generation failed: %w", err)
	}

	expiresAt := time.Now().Add(a.codeTTL)
	if err := a.userRepository.SetTwoFACode(ctx, foundUser.ID, code, expiresAt); err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("storing verification code failed")
		return models.User{}, fmt.Errorf("storing verification code failed: %w", err)
	}

	if err := a.sender.Send(ctx, foundUser.Email, code); err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("verification code delivery failed")
		return models.User{}, fmt.Errorf("verification code delivery failed: %w", err)
	}

	return foundUser, nil
}

// VerifyTwoFA performs the second authentication phase.
//
// Credentials are re-verified from scratch so the code is useless without
// them. The submitted code is compared against the pending one, then its
// expiry is checked, then it is consumed with an atomic compare-and-clear.
// A concurrent verification or a newer login makes the compare-and-clear
// miss, which surfaces as ErrInvalidCode.
//
// On success a fresh access/refresh token pair is minted.
func (a *authService) VerifyTwoFA(ctx context.Context, creds Credentials, code string) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Email == "" || creds.Password == "" || code == "" {
		log.Error().Str("username", creds.Username).Msg("invalid verification data provided")
		return models.User{}, models.TokenPair{}, ErrInvalidDataProvided
	}

	foundUser, err := a.verifyCredentials(ctx, creds)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	if foundUser.TwoFACode == nil || foundUser.TwoFACodeExpiresAt == nil {
		return models.User{}, models.TokenPair{}, ErrInvalidCode
	}
	if *foundUser.TwoFACode != code {
		return models.User{}, models.TokenPair{}, ErrInvalidCode
	}
	if time.Now().After(*foundUser.TwoFACodeExpiresAt) {
		return models.User{}, models.TokenPair{}, ErrCodeExpired
	}

	if err := a.userRepository.ClearTwoFACode(ctx, foundUser.ID, code); err != nil {
		if errors.Is(err, store.ErrTwoFACodeMismatch) {
			// lost the race against a concurrent verification or a newer login
			return models.User{}, models.TokenPair{}, ErrInvalidCode
		}
		log.Err(err).Int64("id", foundUser.ID).Msg("consuming verification code failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("consuming verification code failed: %w", err)
	}

	pair, err := a.createTokenPair(foundUser)
	if err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("token pair creation failed")
		return models.User{}, models.TokenPair{}, err
	}

	return foundUser, pair, nil
}

// ParseAccessToken validates and parses a raw access token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. An expired-but-otherwise-valid token is reported as
// ErrTokenExpired; every other validation failure (wrong signature, wrong
// issuer, malformed) is normalised to ErrTokenInvalid so that callers do not
// need to inspect low-level JWT errors.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.accessSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.Token{}, ErrTokenExpired
		}
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}

// GetUserByID fetches the current account record for the given ID. Used by
// the session guard to refresh role and identity on every guarded request.
func (a *authService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return foundUser, nil
}

// GetAllUsers returns every account for the administrators overview. Only
// admins may enumerate accounts.
func (a *authService) GetAllUsers(ctx context.Context, actor models.User) ([]models.User, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	users, err := a.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// UpdateProfile applies the requested changes to the target account.
//
// Non-admin actors may only edit their own account. A plaintext password in
// the update is hashed before persistence. The IsAdmin change is silently
// discarded when the actor is not an admin, so a regular user editing their
// own profile can never grant themselves the role.
func (a *authService) UpdateProfile(ctx context.Context, actor models.User, targetID int64, update ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if !actor.IsAdmin && actor.ID != targetID {
		return models.User{}, ErrForbidden
	}

	storeUpdate := models.UserUpdate{
		Username: update.Username,
		Email:    update.Email,
	}

	if update.IsAdmin != nil && actor.IsAdmin {
		storeUpdate.IsAdmin = update.IsAdmin
	}

	if update.Password != nil {
		if *update.Password == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		hash, err := a.hasher.Hash(*update.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		storeUpdate.PasswordHash = &hash
	}

	if storeUpdate.Empty() {
		return models.User{}, ErrInvalidDataProvided
	}

	updatedUser, err := a.userRepository.UpdateUser(ctx, targetID, storeUpdate)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserAlreadyExists):
			return models.User{}, ErrUsernameTaken
		case errors.Is(err, store.ErrUserNotFound):
			return models.User{}, err
		}
		log.Err(err).Int64("id", targetID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updatedUser, nil
}

// DeleteUser removes the target account.
//
// Only admins may delete accounts, and never their own: the self-deletion
// guard keeps at least the acting admin alive through any cleanup sweep.
func (a *authService) DeleteUser(ctx context.Context, actor models.User, targetID int64) error {
	log := logger.FromContext(ctx)

	if !actor.IsAdmin {
		return ErrForbidden
	}
	if actor.ID == targetID {
		return ErrSelfDeletion
	}

	if err := a.userRepository.DeleteUser(ctx, targetID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		log.Err(err).Int64("id", targetID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

// verifyCredentials resolves the account matching the full credential triple.
// Unknown account and wrong password are indistinguishable to the caller.
func (a *authService) verifyCredentials(ctx context.Context, creds Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsernameAndEmail(ctx, creds.Username, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", creds.Username).Msg("user search failed")
		return models.User{}, fmt.Errorf("user search failed: %w", err)
	}

	ok, err := a.hasher.Verify(creds.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("password verification failed")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// createTokenPair mints the access and refresh tokens for a verified user,
// each signed with its own secret.
func (a *authService) createTokenPair(user models.User) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.accessDuration, a.accessSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.refreshDuration, a.refreshSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{Access: access, Refresh: refresh}, nil
}
