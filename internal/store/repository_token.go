package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
)

type tokenRepository struct {
	blob BlobStore
}

// NewTokenRepository constructs a [TokenRepository] backed by blob. Revoked
// token ids are stored with a TTL equal to the token's remaining lifetime,
// so the set never outgrows the live tokens.
func NewTokenRepository(blob BlobStore, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{blob: blob}
}

func (r *tokenRepository) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.blob.Update(ctx, func(tx Tx) error {
		return tx.PutTTL(revokedTokenKey(tokenID), time.Now().UTC(), ttl)
	})
}

func (r *tokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var revoked bool
	err := r.blob.View(ctx, func(tx Tx) error {
		var err error
		revoked, err = tx.Exists(revokedTokenKey(tokenID))
		return err
	})
	return revoked, err
}
