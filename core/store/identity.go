package store

import "github.com/google/uuid"

// IDSource mints record identifiers. Next must never return the same value
// twice, including across concurrent calls and process restarts. No ordering
// is promised; sorting and pagination rely on explicit sort keys, not on
// identifier shape.
type IDSource interface {
	Next() string
}

// uuidSource mints random v4 UUIDs.
type uuidSource struct{}

func (uuidSource) Next() string { return uuid.NewString() }

// NewIDSource returns the default UUID-backed identifier source.
func NewIDSource() IDSource { return uuidSource{} }
