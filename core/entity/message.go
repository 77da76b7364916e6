package entity

import "time"

// Message is sent between two users, optionally about a property. A message
// is immutable after creation except for the Read flag.
type Message struct {
	ID         MessageID  `json:"id"`
	SenderID   UserID     `json:"senderId"`
	ReceiverID UserID     `json:"receiverId"`
	PropertyID PropertyID `json:"propertyId,omitempty"`
	Body       string     `json:"body"`
	Read       bool       `json:"read"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt"`
}

func (m Message) Key() string        { return string(m.ID) }
func (m Message) Created() time.Time { return m.CreatedAt }
