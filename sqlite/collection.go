package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/Mirriamnjeri/rentals/core/entity"
	"github.com/Mirriamnjeri/rentals/core/store"
)

// Collection is a durable, identifier-keyed container for one entity kind,
// backed by the shared records table. The mutex on the owning DB serializes
// writes, so a concurrent reader never observes a partial Put or Remove.
type Collection[T any] struct {
	db   *DB
	name string
}

var _ store.Collection[entity.User] = (*Collection[entity.User])(nil)

// NewCollection binds a collection name to the shared database.
func NewCollection[T any](db *DB, name string) *Collection[T] {
	return &Collection[T]{db: db, name: name}
}

// Put inserts or replaces the record at key. Overwrites are accepted by
// design; the write is committed before Put returns.
func (c *Collection[T]) Put(key string, record T) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", c.name, err)
	}
	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	_, err = c.db.db.Exec(
		`INSERT INTO records (collection, key, data) VALUES (?, ?, ?)
		 ON CONFLICT(collection, key) DO UPDATE SET data = excluded.data`,
		c.name, key, string(payload),
	)
	if err != nil {
		return fmt.Errorf("write %s record: %w", c.name, err)
	}
	return nil
}

// Get is a point lookup. The second return reports whether a record existed.
func (c *Collection[T]) Get(key string) (T, bool, error) {
	var zero T
	c.db.mu.RLock()
	defer c.db.mu.RUnlock()
	var raw string
	err := c.db.db.QueryRow(
		"SELECT data FROM records WHERE collection = ? AND key = ?",
		c.name, key,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("read %s record: %w", c.name, err)
	}
	var record T
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return zero, false, fmt.Errorf("decode %s record %q: %w", c.name, key, err)
	}
	return record, true, nil
}

// Values returns a snapshot of all records in ascending key order. The
// snapshot is consistent at the moment of the call and is not refreshed if
// the collection mutates while the caller iterates.
func (c *Collection[T]) Values() ([]T, error) {
	c.db.mu.RLock()
	defer c.db.mu.RUnlock()
	rows, err := c.db.db.Query(
		"SELECT key, data FROM records WHERE collection = ? ORDER BY key",
		c.name,
	)
	if err != nil {
		return nil, fmt.Errorf("scan %s collection: %w", c.name, err)
	}
	defer rows.Close()
	var values []T
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", c.name, err)
		}
		var record T
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			c.db.logger.Warn("skipping undecodable record",
				zap.String("collection", c.name),
				zap.String("key", key),
				zap.Error(err))
			continue
		}
		values = append(values, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan %s collection: %w", c.name, err)
	}
	return values, nil
}

// Remove deletes the record at key, reporting whether it existed. The key is
// never reissued; fresh records always get a newly minted identifier.
func (c *Collection[T]) Remove(key string) (bool, error) {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	result, err := c.db.db.Exec(
		"DELETE FROM records WHERE collection = ? AND key = ?",
		c.name, key,
	)
	if err != nil {
		return false, fmt.Errorf("delete %s record: %w", c.name, err)
	}
	affected, _ := result.RowsAffected()
	return affected > 0, nil
}
