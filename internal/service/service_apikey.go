package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

const (
	// apiKeyBytes is the amount of randomness in a key (hex-encoded afterwards).
	apiKeyBytes = 24
	// apiKeyPrefixLength is how much of the key is kept to recognise it in listings.
	apiKeyPrefixLength = 10
)

type apiKeyService struct {
	keys store.APIKeyRepository

	validator validators.Validator

	logger *logger.Logger
}

func NewAPIKeyService(storages *store.Storages, logger *logger.Logger) APIKeyService {
	return &apiKeyService{
		keys:      storages.APIKeyRepository,
		validator: validators.NewValidator(),
		logger:    logger,
	}
}

func (s *apiKeyService) CreateAPIKey(ctx context.Context, userID string, req models.APIKeyRequest) (models.CreatedAPIKey, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.CreatedAPIKey{}, validationError(err)
	}

	plaintext := models.APIKeyPrefix + utils.RandomToken(apiKeyBytes)
	key := models.APIKey{
		ID:        utils.NewID(),
		UserID:    userID,
		Name:      strings.TrimSpace(req.Name),
		Prefix:    plaintext[:apiKeyPrefixLength],
		Hash:      utils.SHA256Hex(plaintext),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.keys.CreateAPIKey(ctx, key); err != nil {
		return models.CreatedAPIKey{}, err
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Str("key_id", key.ID).Msg("api key created")
	return models.CreatedAPIKey{APIKey: key.Public(), Key: plaintext}, nil
}

func (s *apiKeyService) ListAPIKeys(ctx context.Context, userID string) ([]models.APIKey, error) {
	keys, err := s.keys.ListAPIKeys(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range keys {
		keys[i] = keys[i].Public()
	}
	return keys, nil
}

// DeleteAPIKey removes a key of the user. Keys of other users are reported
// as not found.
func (s *apiKeyService) DeleteAPIKey(ctx context.Context, userID, keyID string) error {
	key, err := s.keys.GetAPIKey(ctx, keyID)
	if err != nil {
		return storeError(err, ErrAPIKeyNotFound, nil)
	}
	if key.UserID != userID {
		return ErrAPIKeyNotFound
	}
	return storeError(s.keys.DeleteAPIKey(ctx, keyID), ErrAPIKeyNotFound, nil)
}
