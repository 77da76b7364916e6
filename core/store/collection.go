// Package store implements the persistent multi-collection store behind the
// rentals marketplace. It holds one durable, identifier-keyed collection per
// entity kind, enforces per-entity invariants at write time, and answers
// predicate searches with pagination. There is no cross-collection
// transaction: an operation that touches two collections performs two
// independent writes and the second may fail, leaving the collections
// transiently inconsistent. Callers of such operations must tolerate that.
package store

// Collection names, used as table keys in the backing storage and as the
// subject of change events.
const (
	CollectionUsers        = "users"
	CollectionProperties   = "properties"
	CollectionReviews      = "reviews"
	CollectionRentals      = "rentals"
	CollectionApplications = "applications"
	CollectionMessages     = "messages"
	CollectionMaintenance  = "maintenance"
)

// Collection is a durable, identifier-keyed container for one entity kind.
//
// Put has upsert semantics: writing an existing key overwrites without error.
// Once Put returns, the record must survive a process restart; implementations
// write through and never buffer in volatile memory only.
//
// Values returns a snapshot of all records in ascending key order, consistent
// at the moment of the call. It is not refreshed if the collection mutates
// while the caller iterates.
//
// Remove reports whether a record existed. A removed key is never reissued;
// fresh records always receive a newly minted identifier.
type Collection[T any] interface {
	Put(key string, record T) error
	Get(key string) (T, bool, error)
	Values() ([]T, error)
	Remove(key string) (bool, error)
}
