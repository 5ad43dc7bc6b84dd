package messaging

import (
	"context"
	"time"
)

// Channels used for integration events
const (
	ChannelNotifications  = "directory.notifications"
	ChannelDirectMessages = "directory.direct_messages"
)

// Event types
const (
	EventPostNotified      = "post.notified"
	EventDirectMessageSent = "direct_message.sent"
)

// Broker defines the interface for message brokers
type Broker interface {
	Publisher
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}

// Publisher defines the interface for publishing messages
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}

// Message is the envelope written to every channel.
type Message struct {
	Type       string      `json:"type"`
	Payload    interface{} `json:"payload"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// NewMessage stamps an event payload with its type and the current time.
func NewMessage(eventType string, payload interface{}) Message {
	return Message{
		Type:       eventType,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

// NopBroker drops everything. Used when no broker is configured.
type NopBroker struct{}

func (NopBroker) Publish(context.Context, string, interface{}) error { return nil }

func (NopBroker) Subscribe(ctx context.Context, _ string) (<-chan []byte, error) {
	ch := make(chan []byte)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (NopBroker) Close() error { return nil }
