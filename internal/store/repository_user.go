package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// userRepository is the blob store implementation of [UserRepository].
// Users live under "user:<id>"; "user_email:<email>" maps a lower-cased
// e-mail to the user id and enforces uniqueness.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of store interactions.
type userRepository struct {
	blob   BlobStore
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by blob.
func NewUserRepository(blob BlobStore, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		blob:   blob,
		logger: logger,
	}
}

// CreateUser persists a new user and its e-mail index entry in one
// transaction.
//
// Error handling:
//   - e-mail already indexed → [ErrAlreadyExists].
//   - any other store error → wrapped.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	email := strings.ToLower(user.Email)
	err := r.blob.Update(ctx, func(tx Tx) error {
		exists, err := tx.Exists(userEmailKey(email))
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyExists
		}

		if err = tx.Put(userKey(user.ID), user); err != nil {
			return err
		}
		return tx.Put(userEmailKey(email), user.ID)
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return ErrAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error saving user")
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetUser returns the user with the given id or [ErrNotFound].
func (r *userRepository) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := r.blob.View(ctx, func(tx Tx) error {
		var err error
		user, err = getRecord[models.User](tx, userKey(id))
		return err
	})
	return user, err
}

// FindUserByEmail resolves the e-mail index and returns the user or
// [ErrNotFound]. The lookup is case-insensitive.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.blob.View(ctx, func(tx Tx) error {
		var id string
		if err := tx.Get(userEmailKey(strings.ToLower(email)), &id); err != nil {
			return err
		}

		var err error
		user, err = getRecord[models.User](tx, userKey(id))
		return err
	})
	return user, err
}

// UpdateUser overwrites an existing user. The e-mail cannot be changed.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) error {
	return r.blob.Update(ctx, func(tx Tx) error {
		exists, err := tx.Exists(userKey(user.ID))
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		return tx.Put(userKey(user.ID), user)
	})
}
