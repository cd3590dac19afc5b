// Package events publishes order, payment and wallet domain events.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	OrderCreated       Type = "order.created"
	OrderStatusChanged Type = "order.status_changed"
	OrderCancelled     Type = "order.cancelled"
	PaymentCompleted   Type = "payment.completed"
	WalletToppedUp     Type = "wallet.topped_up"
)

const schemaVersion = "1"

type Event struct {
	ID         string          `json:"id"`
	Type       Type            `json:"type"`
	OrderID    *uuid.UUID      `json:"orderId,omitempty"`
	UserID     uuid.UUID       `json:"userId"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// New builds an event with a fresh id. payload is marshalled as JSON; a nil
// payload is omitted.
func New(t Type, userID uuid.UUID, orderID *uuid.UUID, payload any) (Event, error) {
	ev := Event{
		ID:         uuid.NewString(),
		Type:       t,
		OrderID:    orderID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return Event{}, err
		}
		ev.Payload = b
	}
	return ev, nil
}

// Key partitions events by order so one order's history stays ordered.
// Events without an order fall back to the user.
func (e Event) Key() string {
	if e.OrderID != nil {
		return e.OrderID.String()
	}
	return e.UserID.String()
}

// Publisher never fails the caller: delivery problems are logged by the
// implementation.
type Publisher interface {
	Publish(ctx context.Context, ev Event)
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) {}
