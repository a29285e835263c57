package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
)

// collection stores records of one kind that belong to a parent (a site or a
// user) and are listed through the parent's index.
type collection[T any] struct {
	blob      BlobStore
	name      string
	recordKey func(id string) string
	indexKey  func(parentID string) string
	parentOf  func(v T) string
}

func (c collection[T]) create(ctx context.Context, id string, v T, extra func(tx Tx) error) error {
	err := c.blob.Update(ctx, func(tx Tx) error {
		if err := tx.Put(c.recordKey(id), v); err != nil {
			return err
		}
		if err := tx.IndexAdd(c.indexKey(c.parentOf(v)), id); err != nil {
			return err
		}
		if extra != nil {
			return extra(tx)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("collection", c.name).Msg("error saving record")
		return fmt.Errorf("create %s: %w", c.name, err)
	}
	return nil
}

func (c collection[T]) get(ctx context.Context, id string) (T, error) {
	var v T
	err := c.blob.View(ctx, func(tx Tx) error {
		var err error
		v, err = getRecord[T](tx, c.recordKey(id))
		return err
	})
	return v, err
}

func (c collection[T]) list(ctx context.Context, parentID string) ([]T, error) {
	var out []T
	err := c.blob.View(ctx, func(tx Tx) error {
		var err error
		out, err = listRecords[T](tx, c.indexKey(parentID), c.recordKey)
		return err
	})
	return out, err
}

// update overwrites an existing record; the parent cannot change.
func (c collection[T]) update(ctx context.Context, id string, v T) error {
	return c.blob.Update(ctx, func(tx Tx) error {
		exists, err := tx.Exists(c.recordKey(id))
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		return tx.Put(c.recordKey(id), v)
	})
}

func (c collection[T]) delete(ctx context.Context, id string, extra func(tx Tx) error) error {
	err := c.blob.Update(ctx, func(tx Tx) error {
		v, err := getRecord[T](tx, c.recordKey(id))
		if err != nil {
			return err
		}
		if err = tx.IndexRemove(c.indexKey(c.parentOf(v)), id); err != nil {
			return err
		}
		if extra != nil {
			if err = extra(tx); err != nil {
				return err
			}
		}
		return tx.Delete(c.recordKey(id))
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("collection", c.name).Msg("error deleting record")
		return fmt.Errorf("delete %s: %w", c.name, err)
	}
	return err
}
