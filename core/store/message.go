package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Mirriamnjeri/rentals/core/entity"
	"github.com/Mirriamnjeri/rentals/core/query"
	"github.com/Mirriamnjeri/rentals/core/validate"
)

// NewMessage enumerates every caller-supplied field of a message. PropertyID
// is optional.
type NewMessage struct {
	SenderID   entity.UserID
	ReceiverID entity.UserID
	PropertyID entity.PropertyID
	Body       string
}

// CreateMessage mints an identifier, validates, and persists a new message.
// Messages start unread.
func (s *Store) CreateMessage(in NewMessage) (entity.Message, error) {
	m := entity.Message{
		ID:         entity.MessageID(s.ids.Next()),
		SenderID:   in.SenderID,
		ReceiverID: in.ReceiverID,
		PropertyID: in.PropertyID,
		Body:       in.Body,
		Read:       false,
		CreatedAt:  s.stamp(),
	}
	if err := validate.Message(&m); err != nil {
		return entity.Message{}, err
	}
	if err := s.messages.Put(m.Key(), m); err != nil {
		return entity.Message{}, fmt.Errorf("persist message: %w", err)
	}
	s.emit(CollectionMessages, OpCreate, m.Key())
	s.logger.Debug("message created", zap.String("id", m.Key()))
	return m, nil
}

// MessageByID is a point lookup.
func (s *Store) MessageByID(id entity.MessageID) (entity.Message, error) {
	m, ok, err := s.messages.Get(string(id))
	if err != nil {
		return entity.Message{}, fmt.Errorf("lookup message: %w", err)
	}
	if !ok {
		return entity.Message{}, &NotFoundError{Collection: CollectionMessages, ID: string(id)}
	}
	return m, nil
}

// MarkMessageRead flips the read flag. Messages are otherwise immutable after
// creation, so this is the only update a message supports.
func (s *Store) MarkMessageRead(id entity.MessageID) (entity.Message, error) {
	m, err := s.MessageByID(id)
	if err != nil {
		return entity.Message{}, err
	}
	if m.Read {
		return m, nil
	}
	m.Read = true
	now := s.stamp()
	m.UpdatedAt = &now
	if err := s.messages.Put(m.Key(), m); err != nil {
		return entity.Message{}, fmt.Errorf("persist message: %w", err)
	}
	s.emit(CollectionMessages, OpUpdate, m.Key())
	return m, nil
}

// MessagesByReceiver lists messages delivered to one user in creation order.
func (s *Store) MessagesByReceiver(id entity.UserID) ([]entity.Message, error) {
	return list(s.messages, query.Equals(func(m entity.Message) entity.UserID { return m.ReceiverID }, id))
}

// MessagesBetween lists the conversation between two users, in either
// direction, in creation order.
func (s *Store) MessagesBetween(a, b entity.UserID) ([]entity.Message, error) {
	return list(s.messages, func(m entity.Message) bool {
		return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
	})
}

// MessagesByProperty lists messages about one property in creation order.
func (s *Store) MessagesByProperty(id entity.PropertyID) ([]entity.Message, error) {
	return list(s.messages, query.Equals(func(m entity.Message) entity.PropertyID { return m.PropertyID }, id))
}
