// Package sqlite provides the durable backing store for the rentals
// collections. Every collection shares one SQLite database with a single
// records table keyed by (collection, key); record payloads are stored as
// JSON. Writes go straight through to the database, so a record that has been
// Put survives a crash or restart of the hosting process.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/Mirriamnjeri/rentals/core/entity"
	"github.com/Mirriamnjeri/rentals/core/store"
)

// DB owns the database handle shared by the per-entity collections. One DB is
// opened at process startup and lives until process exit.
type DB struct {
	mu     sync.RWMutex
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (creating if necessary) the database at path and prepares the
// records table. A nil logger falls back to a no-op logger.
func Open(path string, logger *zap.Logger) (*DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS records (
		collection TEXT NOT NULL,
		key        TEXT NOT NULL,
		data       TEXT NOT NULL,
		PRIMARY KEY (collection, key)
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}
	logger.Debug("database opened", zap.String("path", path))
	return &DB{db: db, logger: logger}, nil
}

// Close releases the database handle.
func (d *DB) Close() error {
	return d.db.Close()
}

// Collections wires one durable collection per entity kind over the shared
// database, ready to hand to store.New.
func (d *DB) Collections() store.Collections {
	return store.Collections{
		Users:        NewCollection[entity.User](d, store.CollectionUsers),
		Properties:   NewCollection[entity.Property](d, store.CollectionProperties),
		Reviews:      NewCollection[entity.Review](d, store.CollectionReviews),
		Rentals:      NewCollection[entity.Rental](d, store.CollectionRentals),
		Applications: NewCollection[entity.Application](d, store.CollectionApplications),
		Messages:     NewCollection[entity.Message](d, store.CollectionMessages),
		Maintenance:  NewCollection[entity.Maintenance](d, store.CollectionMaintenance),
	}
}
