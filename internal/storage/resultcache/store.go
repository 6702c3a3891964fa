// Package resultcache persists finished simulation results in BoltDB. A run is
// fully determined by its word, grid size and generation cap, so a stored
// result never goes stale.
package resultcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"wordlife/pkg/sims/life"
)

const resultBucket = "result"

var errNotConfigured = errors.New("result cache is not configured")

// Key identifies a run.
type Key struct {
	Word           string
	Rows           int
	Cols           int
	MaxGenerations int
}

// KeyFor returns the key of running word under cfg.
func KeyFor(word string, cfg life.Config) Key {
	return Key{Word: word, Rows: cfg.Size.Rows, Cols: cfg.Size.Cols, MaxGenerations: cfg.MaxGenerations}
}

// bytes encodes the key with the word last, so no separator escaping is needed.
func (k Key) bytes() []byte {
	return fmt.Appendf(nil, "%dx%d/%d/%s", k.Rows, k.Cols, k.MaxGenerations, k.Word)
}

// Store provides a BoltDB-backed result cache.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("cache path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(resultBucket)); err != nil {
			return fmt.Errorf("create result bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put stores the result of a run.
func (s *Store) Put(ctx context.Context, key Key, res life.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return errNotConfigured
	}
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(resultBucket)).Put(key.bytes(), payload)
	})
}

// Get fetches a stored result. It reports false when the run is not cached.
func (s *Store) Get(ctx context.Context, key Key) (life.Result, bool, error) {
	if err := ctx.Err(); err != nil {
		return life.Result{}, false, err
	}
	if s == nil || s.db == nil {
		return life.Result{}, false, errNotConfigured
	}
	var (
		res   life.Result
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		payload := tx.Bucket([]byte(resultBucket)).Get(key.bytes())
		if payload == nil {
			return nil
		}
		found = true
		if err := json.Unmarshal(payload, &res); err != nil {
			return fmt.Errorf("unmarshal result: %w", err)
		}
		return nil
	})
	if err != nil {
		return life.Result{}, false, err
	}
	return res, found, nil
}

// Simulate returns the cached result for word under cfg, running and storing
// it on a miss. A nil store just runs the simulation. Cache read and write
// failures are returned alongside a valid result so callers can log them.
func (s *Store) Simulate(ctx context.Context, word string, cfg life.Config) (life.Result, error) {
	if s == nil {
		return life.Simulate(word, cfg)
	}
	key := KeyFor(word, cfg)
	if res, ok, err := s.Get(ctx, key); err == nil && ok {
		return res, nil
	}
	res, err := life.Simulate(word, cfg)
	if err != nil {
		return life.Result{}, err
	}
	if err := s.Put(ctx, key, res); err != nil {
		return res, &WriteError{Err: err}
	}
	return res, nil
}

// WriteError reports a result that was computed but could not be stored.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "store result: " + e.Err.Error() }

func (e *WriteError) Unwrap() error { return e.Err }
