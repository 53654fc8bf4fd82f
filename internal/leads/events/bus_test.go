package events_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/consultbase/leadsvc/internal/leads/events"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()

	var (
		mu    sync.Mutex
		seen  []string
		count int
	)
	for i := 0; i < 3; i++ {
		bus.Subscribe(events.TopicLeadCreated, func(ctx context.Context, evt events.Event) error {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, evt.Topic)
			count++
			return nil
		})
	}

	bus.Publish(context.Background(), events.Event{Topic: events.TopicLeadCreated, Payload: "lead-1"})
	bus.Wait()

	require.Equal(t, 3, count)
	for _, topic := range seen {
		require.Equal(t, events.TopicLeadCreated, topic)
	}
}

func TestPublishIgnoresOtherTopics(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()

	called := false
	bus.Subscribe(events.TopicConsultationUpdated, func(ctx context.Context, evt events.Event) error {
		called = true
		return nil
	})

	bus.Publish(context.Background(), events.Event{Topic: events.TopicLeadCreated})
	bus.Wait()

	require.False(t, called)
}

func TestHandlerErrorDoesNotPropagate(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()

	var ran bool
	bus.Subscribe(events.TopicLeadCreated, func(ctx context.Context, evt events.Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(events.TopicLeadCreated, func(ctx context.Context, evt events.Event) error {
		ran = true
		return nil
	})

	// Publish must not panic or surface the handler error.
	bus.Publish(context.Background(), events.Event{Topic: events.TopicLeadCreated})
	bus.Wait()

	require.True(t, ran)
}
