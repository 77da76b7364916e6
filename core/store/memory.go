package store

import (
	"sort"
	"sync"
)

// MemoryCollection is a Collection kept entirely in process memory. It honors
// every part of the Collection contract except durability, which makes it
// suitable for tests and throwaway tooling, not for serving traffic.
type MemoryCollection[T any] struct {
	mu      sync.RWMutex
	records map[string]T
}

// NewMemoryCollection returns an empty in-memory collection.
func NewMemoryCollection[T any]() *MemoryCollection[T] {
	return &MemoryCollection[T]{records: make(map[string]T)}
}

func (c *MemoryCollection[T]) Put(key string, record T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[key] = record
	return nil
}

func (c *MemoryCollection[T]) Get(key string) (T, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	record, ok := c.records[key]
	return record, ok, nil
}

func (c *MemoryCollection[T]) Values() ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.records))
	for key := range c.records {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	values := make([]T, 0, len(keys))
	for _, key := range keys {
		values = append(values, c.records[key])
	}
	return values, nil
}

func (c *MemoryCollection[T]) Remove(key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.records[key]
	delete(c.records, key)
	return ok, nil
}
