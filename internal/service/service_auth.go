package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/society360/backend/internal/config"
	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/internal/store"
	"github.com/society360/backend/internal/utils"
	"github.com/society360/backend/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification and the JWT token lifecycle using a
// UserRepository for principal lookups and bcrypt for password
// comparison.
type authService struct {
	// userRepository is the data-access layer used to look up principals.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates a username/password pair.
//
// It looks up the account by exact username and compares the submitted
// password against the stored bcrypt hash. A missing account, a
// deactivated resident, and a password mismatch all produce the same
// ErrInvalidCredentials so that the caller cannot tell which part
// failed.
//
// Returns the authenticated principal or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials for every authentication failure.
func (a *authService) Login(ctx context.Context, username, password string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return nil, ErrInvalidDataProvided
	}

	principal, err := a.userRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("username", username).Msg("login attempt for unknown username")
			return nil, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return nil, fmt.Errorf("user search by username failed: %w", err)
	}

	if resident, ok := principal.(models.Resident); ok && !resident.IsActive {
		log.Debug().Str("username", username).Msg("login attempt for deactivated resident")
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHashOf(principal)), []byte(password)); err != nil {
		log.Debug().Str("username", username).Msg("wrong password")
		return nil, ErrInvalidCredentials
	}

	return principal, nil
}

// CreateToken issues a signed JWT for the given principal.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the principal's role as
// a custom claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, principal models.Principal) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, principal.PrincipalID(), principal.PrincipalRole(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authorize validates a raw JWT string and resolves the acting principal.
//
// Token validity is checked statelessly (signature, issuer, expiry); the
// principal is then loaded from the identity store so that deleted or
// deactivated accounts are rejected even while their tokens are still
// within their lifetime. Any failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) Authorize(ctx context.Context, tokenString string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return nil, ErrTokenIsExpiredOrInvalid
	}

	principal, err := a.userRepository.FindByID(ctx, token.UserID)
	if err != nil {
		log.Debug().Str("user_id", token.UserID.String()).Msg("token subject no longer exists")
		return nil, ErrTokenIsExpiredOrInvalid
	}

	if resident, ok := principal.(models.Resident); ok && !resident.IsActive {
		return nil, ErrTokenIsExpiredOrInvalid
	}

	return principal, nil
}

// passwordHashOf extracts the stored bcrypt hash from either principal
// kind.
func passwordHashOf(principal models.Principal) string {
	switch p := principal.(type) {
	case models.Admin:
		return p.PasswordHash
	case models.Resident:
		return p.PasswordHash
	default:
		return ""
	}
}
