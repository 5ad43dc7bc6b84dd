package messaging

import (
	"context"
	"encoding/json"
	"fmt"
)

// Handler processes one decoded message. Returning an error does not stop consumption.
type Handler func(ctx context.Context, msg Message) error

// Consume subscribes to channel and feeds decoded messages to handler until ctx is done.
// Undecodable payloads and handler errors are reported through onError.
func Consume(ctx context.Context, broker Broker, channel string, handler Handler, onError func(error)) error {
	msgChan, err := broker.Subscribe(ctx, channel)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	go func() {
		for raw := range msgChan {
			var msg Message
			if err := json.Unmarshal(raw, &msg); err != nil {
				if onError != nil {
					onError(fmt.Errorf("failed to decode message on %s: %w", channel, err))
				}
				continue
			}
			if err := handler(ctx, msg); err != nil && onError != nil {
				onError(err)
			}
		}
	}()

	return nil
}
