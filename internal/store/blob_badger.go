package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// maxConflictRetries bounds how often an update is replayed after badger
// reports a write conflict with a concurrent transaction.
const maxConflictRetries = 5

// badgerStore is the badger implementation of [BlobStore].
type badgerStore struct {
	db     *badger.DB
	logger *logger.Logger
}

// NewBadgerStore opens a badger database at cfg.Dir, or in memory when
// cfg.InMemory is set.
func NewBadgerStore(cfg config.Blob, log *logger.Logger) (BlobStore, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
			return nil, fmt.Errorf("create blob store dir: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Dir)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("func", "NewBadgerStore").Msg("error opening blob store")
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	log.Info().Str("func", "NewBadgerStore").Bool("in_memory", cfg.InMemory).Msg("blob store opened")

	return &badgerStore{db: db, logger: log}, nil
}

// NewBadgerStoreFromDB wraps an already opened badger database.
func NewBadgerStoreFromDB(db *badger.DB, log *logger.Logger) BlobStore {
	return &badgerStore{db: db, logger: log}
}

func (s *badgerStore) View(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(txn *badger.Txn) error {
		return fn(&badgerTx{txn: txn})
	})
}

func (s *badgerStore) Update(ctx context.Context, fn func(tx Tx) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		err = s.db.Update(func(txn *badger.Txn) error {
			return fn(&badgerTx{txn: txn})
		})
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		logger.FromContext(ctx).Debug().Str("func", "*badgerStore.Update").Int("attempt", attempt+1).Msg("write conflict, retrying")
	}
	return err
}

func (s *badgerStore) Close() error {
	if s.db.IsClosed() {
		return ErrStoreClosed
	}
	return s.db.Close()
}

type badgerTx struct {
	txn *badger.Txn
}

func (t *badgerTx) Get(key string, dst any) error {
	item, err := t.txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %q: %w", key, err)
	}

	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, dst); err != nil {
			return fmt.Errorf("decode %q: %w", key, err)
		}
		return nil
	})
}

func (t *badgerTx) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := t.txn.Set([]byte(key), data); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (t *badgerTx) PutTTL(key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	entry := badger.NewEntry([]byte(key), data).WithTTL(ttl)
	if err := t.txn.SetEntry(entry); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (t *badgerTx) Delete(key string) error {
	if err := t.txn.Delete([]byte(key)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (t *badgerTx) Exists(key string) (bool, error) {
	_, err := t.txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %q: %w", key, err)
	}
	return true, nil
}

func (t *badgerTx) Index(key string) ([]string, error) {
	var ids []string
	if err := t.Get(key, &ids); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ids, nil
}

func (t *badgerTx) IndexAdd(key, id string) error {
	ids, err := t.Index(key)
	if err != nil {
		return err
	}
	if slices.Contains(ids, id) {
		return nil
	}
	return t.Put(key, append(ids, id))
}

func (t *badgerTx) IndexRemove(key, id string) error {
	ids, err := t.Index(key)
	if err != nil {
		return err
	}

	i := slices.Index(ids, id)
	if i < 0 {
		return nil
	}
	ids = slices.Delete(ids, i, i+1)
	if len(ids) == 0 {
		return t.Delete(key)
	}
	return t.Put(key, ids)
}
