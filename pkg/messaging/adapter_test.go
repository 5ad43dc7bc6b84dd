package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanBroker struct {
	NopBroker
	ch  chan []byte
	err error
}

func (b *chanBroker) Subscribe(context.Context, string) (<-chan []byte, error) {
	return b.ch, b.err
}

func TestConsumeDecodesAndReportsErrors(t *testing.T) {
	broker := &chanBroker{ch: make(chan []byte, 3)}
	payload, err := json.Marshal(NewMessage(EventPostNotified, map[string]int{"message_id": 1}))
	require.NoError(t, err)

	broker.ch <- payload
	broker.ch <- []byte("{not json")
	broker.ch <- payload
	close(broker.ch)

	var (
		mu       sync.Mutex
		received []Message
		errs     []error
	)
	done := make(chan struct{})
	handler := func(_ context.Context, msg Message) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, msg)
		if len(received) == 2 {
			close(done)
			return errors.New("handler failed")
		}
		return nil
	}
	onError := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
	}

	require.NoError(t, Consume(context.Background(), broker, ChannelNotifications, handler, onError))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("messages not consumed")
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(errs) == 2
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, EventPostNotified, received[0].Type)
	assert.Contains(t, errs[0].Error(), "failed to decode")
	assert.EqualError(t, errs[1], "handler failed")
}

func TestConsumeSubscribeError(t *testing.T) {
	broker := &chanBroker{err: errors.New("no connection")}

	err := Consume(context.Background(), broker, ChannelDirectMessages, func(context.Context, Message) error { return nil }, nil)
	assert.ErrorContains(t, err, "no connection")
}

func TestNopBrokerSubscribeClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := NopBroker{}.Subscribe(ctx, ChannelNotifications)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}
