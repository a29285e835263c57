package store

import (
	"context"
	"errors"
	"time"
)

// BlobStore is the key-value store that holds account and configuration
// records. Every record is an opaque JSON blob under a "<kind>:<id>" key;
// secondary indexes are JSON arrays of ids kept under their own keys and
// maintained by the repositories inside the same transaction as the record.
//
// Writes are atomic per transaction. Two transactions updating the same key
// concurrently resolve as last-write-wins.
type BlobStore interface {
	// View runs fn in a read-only transaction.
	View(ctx context.Context, fn func(tx Tx) error) error
	// Update runs fn in a read-write transaction and commits it when fn
	// returns nil.
	Update(ctx context.Context, fn func(tx Tx) error) error
	// Close releases the underlying database.
	Close() error
}

// Tx is a blob store transaction.
type Tx interface {
	// Get decodes the record under key into dst or returns [ErrNotFound].
	Get(key string, dst any) error
	// Put encodes v and stores it under key.
	Put(key string, v any) error
	// PutTTL stores v under key for ttl, after which the key disappears.
	PutTTL(key string, v any, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Exists reports whether key is present.
	Exists(key string) (bool, error)

	// Index returns the ids listed under the index key, in insertion order.
	Index(key string) ([]string, error)
	// IndexAdd appends id to the index unless it is already listed.
	IndexAdd(key, id string) error
	// IndexRemove drops id from the index. The index key is deleted once empty.
	IndexRemove(key, id string) error
}

// getRecord reads and decodes a single record of type T.
func getRecord[T any](tx Tx, key string) (T, error) {
	var v T
	err := tx.Get(key, &v)
	return v, err
}

// listRecords resolves every id of an index into its record. Ids whose record
// has vanished are skipped.
func listRecords[T any](tx Tx, indexKey string, recordKey func(string) string) ([]T, error) {
	ids, err := tx.Index(indexKey)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		var v T
		if err := tx.Get(recordKey(id), &v); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
