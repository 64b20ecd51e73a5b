// Package store persists rate snapshots in BadgerDB, one entry per date.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/unitfx/unitfx/snapshot"
)

// ErrSnapshotNotFound reports that no snapshot is stored for the date.
var ErrSnapshotNotFound = errors.New("snapshot not found")

const keyPrefix = "snapshot:"

// Store keeps one snapshot per date. The caller owns the badger handle.
type Store struct {
	db *badger.DB
}

func New(db *badger.DB) *Store {
	return &Store{db: db}
}

// Put stores snap under its date, replacing any previous snapshot of that
// date.
func (s *Store) Put(ctx context.Context, snap snapshot.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ctx cancelled: %w", err)
	}

	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(snap.Date), b)
	}); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}

	return nil
}

// Get returns the snapshot stored for the date.
func (s *Store) Get(ctx context.Context, date time.Time) (snapshot.Snapshot, error) {
	var snap snapshot.Snapshot

	if err := ctx.Err(); err != nil {
		return snap, fmt.Errorf("ctx cancelled: %w", err)
	}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(date))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return snap, fmt.Errorf("%w: %s", ErrSnapshotNotFound, date.Format(snapshot.DateLayout))
	}

	if err != nil {
		return snap, fmt.Errorf("retrieve snapshot: %w", err)
	}

	return snap, nil
}

// Dates lists the stored snapshot dates in chronological order. The key
// layout sorts lexicographically as dates, so badger's key order is enough.
func (s *Store) Dates(ctx context.Context) ([]time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ctx cancelled: %w", err)
	}

	var dates []time.Time

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			raw := it.Item().Key()[len(keyPrefix):]

			d, err := time.Parse(snapshot.DateLayout, string(raw))
			if err != nil {
				return fmt.Errorf("malformed key %q: %w", it.Item().Key(), err)
			}

			dates = append(dates, d)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	return dates, nil
}

// Sync pulls every snapshot the source yields and stores it. It returns
// the number of stored snapshots; on error the already-stored ones stay.
func (s *Store) Sync(ctx context.Context, src snapshot.Source) (int, error) {
	list, err := src.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load source: %w", err)
	}

	for n, snap := range list {
		if err := s.Put(ctx, snap); err != nil {
			return n, err
		}
	}

	return len(list), nil
}

func key(date time.Time) []byte {
	return []byte(keyPrefix + date.Format(snapshot.DateLayout))
}
