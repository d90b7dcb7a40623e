// Package store implements persistent storage of the command history in a
// bbolt database.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.edpp.dev/pkg/logutil"
	"src.edpp.dev/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

const (
	bucketCmd = "cmd"

	// How long to wait for another edpp process to release the database.
	dbTimeout = time.Second
)

// Functions run in a single transaction when a database is opened, keyed by
// descriptions.
var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is the permanent storage backend for the command history.
type DBStore interface {
	storedefs.Store
	// Trim deletes the oldest commands so that at most keep remain.
	Trim(keep int) error
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore opens the database at dbname, creating it if needed.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0600, &bolt.Options{Timeout: dbTimeout})
	if err != nil {
		return nil, err
	}
	st, err := NewStoreFromDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Println("opened", dbname)
	return st, nil
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dbStore{db}, nil
}

// Close closes the underlying database.
func (s *dbStore) Close() error {
	return s.db.Close()
}
