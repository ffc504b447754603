package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jiminoh-dev/linkup/internal/adapter"
	"github.com/jiminoh-dev/linkup/internal/config"
	"github.com/jiminoh-dev/linkup/internal/logger"
	"github.com/jiminoh-dev/linkup/internal/store"
	"github.com/jiminoh-dev/linkup/internal/utils"
	"github.com/jiminoh-dev/linkup/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential registration and login, the Google identity-token
// handoff, and session JWT issuance, using a UserRepository for persistence
// and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// identity exchanges Google identity tokens for verified attributes.
	identity adapter.IdentityProvider

	// googleClientID is the OAuth client ID this backend accepts tokens for.
	// When empty the audience check is skipped.
	googleClientID string

	// tokenSignKey is the HMAC secret used to sign session JWTs.
	// When empty, token issuance is disabled and CreateToken returns an
	// empty token without error.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and identity provider, populated with security parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, identity adapter.IdentityProvider, cfg *config.StructuredConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		identity:       identity,
		googleClientID: cfg.Google.ClientID,
		tokenSignKey:   cfg.Auth.TokenSignKey,
		tokenIssuer:    cfg.Auth.TokenIssuer,
		tokenDuration:  cfg.Auth.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// Username, Name, Gender, Location, and MBTI are required; PhoneOrInsta is
// optional. When a password is supplied it is bcrypt-hashed before storage;
// the plaintext never reaches the repository or the logs. The username is
// checked for uniqueness before the insert so a duplicate fails fast with
// [store.ErrUsernameAlreadyExists]; the same sentinel is produced if the
// insert itself trips the unique index (pre-check race).
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if any required field is empty.
//   - store.ErrUsernameAlreadyExists if the username is taken.
//   - A wrapped storage error if a repository call fails.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Name == "" || req.Gender == "" || req.Location == "" || req.MBTI == "" {
		log.Error().Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	switch {
	case err == nil:
		log.Warn().Str("username", req.Username).Msg("username already taken")
		return models.User{}, store.ErrUsernameAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("username", req.Username).Msg("uniqueness check failed")
		return models.User{}, fmt.Errorf("uniqueness check failed: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		Name:         req.Name,
		PhoneOrInsta: req.PhoneOrInsta,
		Gender:       req.Gender,
		Location:     req.Location,
		MBTI:         req.MBTI,
	}

	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			log.Err(err).Str("username", req.Username).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		user.PasswordHash = hash
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by username and password.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrNoSuchAccount if no account with the username exists.
//   - ErrWrongPassword if the bcrypt comparison fails. Accounts created
//     through the Google handoff carry no hash, so credential login against
//     them always fails this way.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("username", req.Username).Msg("no such account")
			return models.User{}, ErrNoSuchAccount
		}

		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(req.Password, foundUser.PasswordHash) {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GoogleLogin exchanges an identity token for verified attributes and
// resolves them against the user table.
//
// When the configured OAuth client ID is non-empty, the token's audience
// claim must match it; a mismatch fails with ErrTokenAudienceMismatch so a
// token minted for another application is never accepted.
//
// Returns a GoogleLoginResult holding either the existing account or a
// needs-register handoff (no row is written in either case), or:
//   - ErrInvalidDataProvided if idToken is empty.
//   - adapter.ErrTokenExchangeFailed if the tokeninfo exchange fails.
//   - A wrapped storage error if the user lookup fails.
func (a *authService) GoogleLogin(ctx context.Context, idToken string) (GoogleLoginResult, error) {
	log := logger.FromContext(ctx)

	if idToken == "" {
		log.Error().Msg("no identity token provided")
		return GoogleLoginResult{}, ErrInvalidDataProvided
	}

	info, err := a.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		log.Err(err).Msg("identity token verification failed")
		return GoogleLoginResult{}, fmt.Errorf("identity token verification failed: %w", err)
	}

	if a.googleClientID == "" {
		log.Warn().Msg("no google client id configured, skipping audience check")
	} else if info.Audience != a.googleClientID {
		log.Error().Str("aud", info.Audience).Msg("token issued for a different client")
		return GoogleLoginResult{}, ErrTokenAudienceMismatch
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, info.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", info.Email).Msg("verified identity has no account yet")
			return GoogleLoginResult{Identity: info, NeedsRegister: true}, nil
		}

		log.Err(err).Str("email", info.Email).Msg("user search by email failed")
		return GoogleLoginResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return GoogleLoginResult{User: foundUser}, nil
}

// CreateToken issues a signed session JWT for the given user.
//
// Token issuance is optional: when no sign key is configured the method
// returns a zero-valued token and no error, and callers simply omit the
// Authorization header.
//
// Returns the token model on success or a wrapped error if JWT generation
// fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, nil
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
