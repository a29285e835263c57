package store

import (
	"context"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// apiKeyRepository stores API keys under "apikey:<id>", listed per user and
// resolvable by the SHA-256 hash of the plaintext key.
type apiKeyRepository struct {
	blob BlobStore
	keys collection[models.APIKey]
}

// NewAPIKeyRepository constructs an [APIKeyRepository] backed by blob.
func NewAPIKeyRepository(blob BlobStore, logger *logger.Logger) APIKeyRepository {
	logger.Debug().Msg("creating api key repository")
	return &apiKeyRepository{
		blob: blob,
		keys: collection[models.APIKey]{
			blob:      blob,
			name:      "api key",
			recordKey: apiKeyKey,
			indexKey:  userAPIKeysKey,
			parentOf:  func(k models.APIKey) string { return k.UserID },
		},
	}
}

func (r *apiKeyRepository) CreateAPIKey(ctx context.Context, key models.APIKey) error {
	return r.keys.create(ctx, key.ID, key, func(tx Tx) error {
		return tx.Put(apiKeyHashKey(key.Hash), key.ID)
	})
}

func (r *apiKeyRepository) GetAPIKey(ctx context.Context, id string) (models.APIKey, error) {
	return r.keys.get(ctx, id)
}

func (r *apiKeyRepository) FindAPIKeyByHash(ctx context.Context, hash string) (models.APIKey, error) {
	var key models.APIKey
	err := r.blob.View(ctx, func(tx Tx) error {
		var id string
		if err := tx.Get(apiKeyHashKey(hash), &id); err != nil {
			return err
		}

		var err error
		key, err = getRecord[models.APIKey](tx, apiKeyKey(id))
		return err
	})
	return key, err
}

func (r *apiKeyRepository) ListAPIKeys(ctx context.Context, userID string) ([]models.APIKey, error) {
	return r.keys.list(ctx, userID)
}

func (r *apiKeyRepository) UpdateAPIKey(ctx context.Context, key models.APIKey) error {
	return r.keys.update(ctx, key.ID, key)
}

func (r *apiKeyRepository) DeleteAPIKey(ctx context.Context, id string) error {
	return r.keys.delete(ctx, id, func(tx Tx) error {
		key, err := getRecord[models.APIKey](tx, apiKeyKey(id))
		if err != nil {
			return err
		}
		return tx.Delete(apiKeyHashKey(key.Hash))
	})
}
