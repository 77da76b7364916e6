package store

import (
	"context"
	"time"

	"github.com/asaidimu/go-events"
)

// Op identifies what a change event describes.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// ChangeEvent is emitted after a write commits to a collection. Events are
// observability signals for the route layer; delivery failures never affect
// the write they describe.
type ChangeEvent struct {
	Collection string    `json:"collection"`
	Op         Op        `json:"op"`
	ID         string    `json:"id"`
	At         time.Time `json:"at"`
}

// Subscribe registers a callback for change events on one collection and
// returns the function that unregisters it.
func (s *Store) Subscribe(collection string, cb func(ctx context.Context, ev ChangeEvent) error) func() {
	return s.bus.Subscribe(collection, cb)
}

// emit publishes a change event. The bus is nil only in partially constructed
// test stores.
func (s *Store) emit(collection string, op Op, id string) {
	if s.bus == nil {
		return
	}
	s.bus.Emit(collection, ChangeEvent{
		Collection: collection,
		Op:         op,
		ID:         id,
		At:         s.now(),
	})
}

func newChangeBus() (*events.TypedEventBus[ChangeEvent], error) {
	return events.NewTypedEventBus[ChangeEvent](events.DefaultConfig())
}
