// Package bolt adapts go.etcd.io/bbolt to the kvsmoke store contract.
package bolt

import (
	"fmt"
	"path/filepath"
	"sync"

	bbolt "go.etcd.io/bbolt"

	"kvsmoke/internal/store"
)

// Engine is the name this adapter registers under.
const Engine = "bolt"

// FileName is the database file created under the configured base folder.
const FileName = "smoke.db"

var bucketName = []byte("smoke")

func init() {
	store.Register(Engine, Open)
}

// DB wraps a bbolt database behind the store contract.
type DB struct {
	mu   sync.Mutex
	db   *bbolt.DB
	open bool
}

// Open opens a bbolt database file under cfg.BaseDir. The base folder must
// already exist. The tuning hook, if set, receives a *bbolt.Options.
func Open(cfg store.Config) (store.Store, error) {
	if cfg.BaseDir == "" {
		return nil, fmt.Errorf("bolt: base folder is required")
	}

	opts := *bbolt.DefaultOptions
	if cfg.Tuning != nil {
		cfg.Tuning(&opts)
	}

	path := filepath.Join(cfg.BaseDir, FileName)
	db, err := bbolt.Open(path, 0600, &opts)
	if err != nil {
		return nil, fmt.Errorf("bolt: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bolt: create bucket: %w", err)
	}

	return &DB{db: db, open: true}, nil
}

// Put writes a key/value pair.
func (d *DB) Put(key, value []byte) error {
	return d.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(key, value)
	})
}

// Get reads the value for a key, or nil if absent. Not part of the store
// contract, but useful for checks that verify a write landed.
func (d *DB) Get(key []byte) ([]byte, error) {
	var value []byte
	err := d.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get(key)
		if v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	return value, err
}

// Flush forces the database file to stable storage.
func (d *DB) Flush() error {
	return d.db.Sync()
}

// Close releases the database. Calling Close twice is safe.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return nil
	}
	d.open = false
	return d.db.Close()
}

// IsOpen reports whether the database is usable.
func (d *DB) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}
