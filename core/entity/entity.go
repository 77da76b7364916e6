// Package entity defines the seven record kinds managed by the rentals store,
// together with their typed identifiers, enumerated fields, and status
// transition rules. Cross-entity references are carried as typed identifier
// wrappers so that, for example, a UserID cannot be passed where a PropertyID
// is expected.
package entity

import "time"

// Typed identifiers, one per record kind. The zero value means "unset".
type (
	UserID        string
	PropertyID    string
	ReviewID      string
	RentalID      string
	ApplicationID string
	MessageID     string
	MaintenanceID string
)

// Record is implemented by every entity kind. Key returns the minted
// identifier used as the collection key; Created returns the creation
// timestamp used as the primary sort key in query results.
type Record interface {
	Key() string
	Created() time.Time
}
