package store

import (
	"fmt"
	"time"

	"github.com/asaidimu/go-events"
	"go.uber.org/zap"

	"github.com/Mirriamnjeri/rentals/core/entity"
	"github.com/Mirriamnjeri/rentals/core/query"
)

// Collections bundles the seven backing collections a Store operates on.
// Each field must be non-nil.
type Collections struct {
	Users        Collection[entity.User]
	Properties   Collection[entity.Property]
	Reviews      Collection[entity.Review]
	Rentals      Collection[entity.Rental]
	Applications Collection[entity.Application]
	Messages     Collection[entity.Message]
	Maintenance  Collection[entity.Maintenance]
}

func (c Collections) complete() bool {
	return c.Users != nil && c.Properties != nil && c.Reviews != nil &&
		c.Rentals != nil && c.Applications != nil && c.Messages != nil &&
		c.Maintenance != nil
}

// Store is the process-wide record store. It is initialized once at startup
// and lives for the process lifetime; there is no teardown beyond process
// exit. Individual collection operations are atomic with respect to
// concurrent operations on the same collection, but nothing spans
// collections.
type Store struct {
	logger *zap.Logger
	ids    IDSource
	now    func() time.Time
	bus    *events.TypedEventBus[ChangeEvent]

	users        Collection[entity.User]
	properties   Collection[entity.Property]
	reviews      Collection[entity.Review]
	rentals      Collection[entity.Rental]
	applications Collection[entity.Application]
	messages     Collection[entity.Message]
	maintenance  Collection[entity.Maintenance]
}

// Option adjusts Store construction.
type Option func(*Store)

// WithIDSource replaces the default UUID identifier source.
func WithIDSource(ids IDSource) Option {
	return func(s *Store) { s.ids = ids }
}

// WithClock replaces the timestamp source. Tests use this to make
// createdAt/updatedAt ordering deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a Store over the given collections. A nil logger falls back to
// a no-op logger.
func New(c Collections, logger *zap.Logger, opts ...Option) (*Store, error) {
	if !c.complete() {
		return nil, fmt.Errorf("store requires all seven collections")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	bus, err := newChangeBus()
	if err != nil {
		return nil, fmt.Errorf("could not initialize change event bus: %w", err)
	}

	s := &Store{
		logger:       logger,
		ids:          NewIDSource(),
		now:          time.Now,
		bus:          bus,
		users:        c.Users,
		properties:   c.Properties,
		reviews:      c.Reviews,
		rentals:      c.Rentals,
		applications: c.Applications,
		messages:     c.Messages,
		maintenance:  c.Maintenance,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// stamp returns the current UTC time for createdAt/updatedAt fields.
func (s *Store) stamp() time.Time { return s.now().UTC() }

// list resolves "records of one kind matching pred" over a collection's
// current values, in creation order. This is the referential index: children
// of a parent are found by an equality predicate on the foreign-key field,
// not by a materialized structure.
func list[T query.Ordered](c Collection[T], pred query.Predicate[T]) ([]T, error) {
	values, err := c.Values()
	if err != nil {
		return nil, err
	}
	matched := query.Apply(values, pred)
	query.SortByCreation(matched)
	return matched, nil
}

// Counts reports how many records each collection currently holds.
func (s *Store) Counts() (map[string]int, error) {
	counts := make(map[string]int, 7)
	count := func(name string, n int, err error) error {
		if err != nil {
			return fmt.Errorf("count %s: %w", name, err)
		}
		counts[name] = n
		return nil
	}
	users, err := s.users.Values()
	if err := count(CollectionUsers, len(users), err); err != nil {
		return nil, err
	}
	properties, err := s.properties.Values()
	if err := count(CollectionProperties, len(properties), err); err != nil {
		return nil, err
	}
	reviews, err := s.reviews.Values()
	if err := count(CollectionReviews, len(reviews), err); err != nil {
		return nil, err
	}
	rentals, err := s.rentals.Values()
	if err := count(CollectionRentals, len(rentals), err); err != nil {
		return nil, err
	}
	applications, err := s.applications.Values()
	if err := count(CollectionApplications, len(applications), err); err != nil {
		return nil, err
	}
	messages, err := s.messages.Values()
	if err := count(CollectionMessages, len(messages), err); err != nil {
		return nil, err
	}
	maintenance, err := s.maintenance.Values()
	if err := count(CollectionMaintenance, len(maintenance), err); err != nil {
		return nil, err
	}
	return counts, nil
}
