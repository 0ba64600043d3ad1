package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// EventHandler reacts to a single published event.
type EventHandler func(context.Context, Event) error

// Dispatcher fans subscription events out to registered handlers.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
}

type inMemoryDispatcher struct {
	mu       sync.RWMutex
	handlers map[EventType][]EventHandler
}

// NewInMemoryDispatcher returns a synchronous, process-local dispatcher.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{handlers: map[EventType][]EventHandler{}}
}

// Publish runs every handler registered for event.Type in registration order.
// Handler failures are collected and joined; they never short-circuit.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	registered := d.handlers[event.Type]
	snapshot := make([]EventHandler, len(registered))
	copy(snapshot, registered)
	d.mu.RUnlock()

	var errs []error
	for i, handle := range snapshot {
		if err := handle(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("%s handler %d: %w", event.Type, i, err))
		}
	}
	return errors.Join(errs...)
}

func (d *inMemoryDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	d.mu.Unlock()
}
