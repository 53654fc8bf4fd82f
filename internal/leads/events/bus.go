// Package events provides a small in-process publish/subscribe bus used to
// decouple record writes from the notification fan-out that follows them.
package events

import (
	"context"
	"sync"

	"github.com/consultbase/leadsvc/pkg/slogx"
)

// Topics published by the services.
const (
	TopicConsultationCreated = "consultation.created"
	TopicConsultationUpdated = "consultation.updated"
	TopicLeadCreated         = "lead.created"
)

// Event is a payload published to a topic. Payload types are owned by the
// publishing service.
type Event struct {
	Topic   string
	Payload any
}

// Handler processes one event. Handlers run on their own goroutine; errors
// are logged, never propagated to the publisher.
type Handler func(ctx context.Context, evt Event) error

// Bus dispatches events to subscribed handlers asynchronously. Publish never
// blocks on handler completion; Wait blocks until all in-flight handlers have
// returned, which is how tests and shutdown get a quiet bus.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	wg       sync.WaitGroup
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
	}
}

// Subscribe registers a handler for a topic. Not safe to call concurrently
// with Publish; wire subscriptions during startup.
func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish dispatches the event to every subscriber of its topic, each on its
// own goroutine. Handler failures are logged and swallowed so a broken
// side effect never fails the write that triggered it.
func (b *Bus) Publish(ctx context.Context, evt Event) {
	b.mu.RLock()
	handlers := b.handlers[evt.Topic]
	b.mu.RUnlock()

	log := slogx.FromContext(ctx)

	// Detach from the request context so in-flight handlers survive the
	// response being written. The logger carries over.
	ctx = slogx.WithContext(context.WithoutCancel(ctx), log)

	for _, h := range handlers {
		b.wg.Add(1)
		go func(h Handler) {
			defer b.wg.Done()
			if err := h(ctx, evt); err != nil {
				log.Error("event handler failed",
					"topic", evt.Topic,
					"error", err,
				)
			}
		}(h)
	}
}

// Wait blocks until all dispatched handlers have returned.
func (b *Bus) Wait() {
	b.wg.Wait()
}
