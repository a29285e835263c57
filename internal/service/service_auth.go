package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// apiKeyTouchInterval limits how often LastUsedAt of an API key is written.
const apiKeyTouchInterval = time.Minute

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, the JWT token lifecycle
// and API key lookups.
type authService struct {
	// users is the data-access layer used to create and look up accounts.
	users store.UserRepository

	// tokens remembers revoked token ids until they expire.
	tokens store.TokenRepository

	// apiKeys resolves hashed API keys.
	apiKeys store.APIKeyRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor of password hashes.
	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(storages *store.Storages, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:         storages.UserRepository,
		tokens:        storages.TokenRepository,
		apiKeys:       storages.APIKeyRepository,
		validator:     validators.NewValidator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		bcryptCost:    bcrypt.DefaultCost,
		logger:        logger,
	}
}

// Register creates a new account on the free plan and issues its first token.
//
// Returns ErrValidation for malformed credentials and ErrEmailTaken when the
// e-mail is already registered.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, models.Token{}, validationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, models.Token{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		ID:                 utils.NewID(),
		Email:              creds.Email,
		Name:               strings.TrimSpace(creds.Name),
		PasswordHash:       string(hash),
		Plan:               models.PlanFree,
		SubscriptionStatus: "none",
		CreatedAt:          time.Now().UTC(),
	}
	if err = a.users.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, storeError(err, nil, ErrEmailTaken)
	}

	token, err := a.createToken(user.ID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return user.Public(), token, nil
}

// Login checks the credentials and issues a token. Unknown e-mails and wrong
// passwords both return ErrWrongCredentials.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds, "Email", "Password"); err != nil {
		return models.User{}, models.Token{}, validationError(err)
	}

	user, err := a.users.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, models.Token{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrWrongCredentials
	}

	token, err := a.createToken(user.ID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user.Public(), token, nil
}

func (a *authService) Logout(ctx context.Context, token models.Token) error {
	ttl := time.Until(token.Expiry())
	if token.ID == "" || ttl <= 0 {
		return nil
	}

	if err := a.tokens.RevokeToken(ctx, token.ID, ttl); err != nil {
		logger.FromContext(ctx).Err(err).Str("token_id", token.ID).Msg("error revoking token")
		return fmt.Errorf("error revoking token: %w", err)
	}
	return nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid. Tokens revoked by logout return ErrTokenRevoked.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.tokens.IsRevoked(ctx, token.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("token_id", token.ID).Msg("error checking token revocation")
		return models.Token{}, fmt.Errorf("error checking token revocation: %w", err)
	}
	if revoked {
		return models.Token{}, ErrTokenRevoked
	}

	return token, nil
}

func (a *authService) AuthenticateAPIKey(ctx context.Context, key string) (models.APIKey, error) {
	if !strings.HasPrefix(key, models.APIKeyPrefix) {
		return models.APIKey{}, ErrInvalidAPIKey
	}

	apiKey, err := a.apiKeys.FindAPIKeyByHash(ctx, utils.SHA256Hex(key))
	if err != nil {
		return models.APIKey{}, storeError(err, ErrInvalidAPIKey, nil)
	}

	now := time.Now().UTC()
	if apiKey.LastUsedAt == nil || now.Sub(*apiKey.LastUsedAt) > apiKeyTouchInterval {
		apiKey.LastUsedAt = &now
		if err = a.apiKeys.UpdateAPIKey(ctx, apiKey); err != nil {
			// usage tracking is informational
			logger.FromContext(ctx).Warn().Err(err).Str("key_id", apiKey.ID).Msg("error updating api key usage")
		}
	}

	return apiKey.Public(), nil
}

func (a *authService) Me(ctx context.Context, userID string) (models.User, error) {
	user, err := a.users.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, storeError(err, ErrUserNotFound, nil)
	}
	return user.Public(), nil
}

func (a *authService) createToken(userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
