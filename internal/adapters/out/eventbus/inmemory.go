// Package eventbus implements the event bus adapter.
package eventbus

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/bnema/boxkeep/internal/boundaries/out"
	"github.com/bnema/boxkeep/internal/domain"
	"github.com/bnema/boxkeep/internal/logging"
)

var _ out.EventBus = (*InMemory)(nil)

const (
	publishTimeout = 5 * time.Second
	handlerTimeout = 30 * time.Second
)

// InMemory implements the EventBus interface using a buffered channel and a
// single dispatch goroutine. Handlers see events in publish order.
type InMemory struct {
	handlers   []out.EventHandler
	eventChan  chan domain.Event
	done       chan struct{}
	mu         sync.RWMutex
	ctx        context.Context
	cancel     context.CancelFunc
	bufferSize int
	log        *log.Logger
	now        func() time.Time
}

// NewInMemory creates a new in-memory event bus.
func NewInMemory(bufferSize int, logger *log.Logger) *InMemory {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &InMemory{
		eventChan:  make(chan domain.Event, bufferSize),
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
		bufferSize: bufferSize,
		log:        logger.With(logging.FieldLayer, "adapter", logging.FieldAdapter, "eventbus"),
		now:        time.Now,
	}
}

// Publish queues an event. It blocks for at most publishTimeout when the
// buffer is full.
func (bus *InMemory) Publish(eventType domain.EventType, payload any) error {
	event := domain.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: bus.now(),
		Data:      payload,
	}

	switch p := payload.(type) {
	case domain.ContainerEventPayload:
		event.Owner = p.Owner
		event.RuntimeID = p.RuntimeID
	}

	timer := time.NewTimer(publishTimeout)
	defer timer.Stop()

	select {
	case bus.eventChan <- event:
		bus.log.Debug("event published", "event_id", event.ID, logging.FieldEvent, event.Type, logging.FieldOwner, event.Owner)
		return nil
	case <-bus.ctx.Done():
		return fmt.Errorf("event bus is stopped")
	case <-timer.C:
		bus.log.Error("event channel is full, dropping event", "event_id", event.ID, logging.FieldEvent, event.Type)
		return fmt.Errorf("event channel is full, dropping event %s", event.ID)
	}
}

// Subscribe adds an event handler to the bus.
func (bus *InMemory) Subscribe(handler out.EventHandler) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.handlers = append(bus.handlers, handler)
	bus.log.Debug("event handler subscribed", logging.FieldHandler, fmt.Sprintf("%T", handler), "total_handlers", len(bus.handlers))
	return nil
}

// Unsubscribe removes an event handler from the bus.
func (bus *InMemory) Unsubscribe(handler out.EventHandler) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	i := slices.Index(bus.handlers, handler)
	if i < 0 {
		return fmt.Errorf("handler not found")
	}
	bus.handlers = slices.Delete(bus.handlers, i, i+1)
	return nil
}

// Start starts the event bus processing loop.
func (bus *InMemory) Start() error {
	bus.log.Info("starting event bus", "buffer_size", bus.bufferSize)
	go bus.processEvents()
	return nil
}

// Stop stops the dispatch loop after delivering the events already queued.
func (bus *InMemory) Stop() error {
	bus.cancel()

	select {
	case <-bus.done:
		bus.log.Info("event bus stopped")
		return nil
	case <-time.After(publishTimeout):
		bus.log.Warn("event bus stop timeout")
		return fmt.Errorf("timeout waiting for event bus to stop")
	}
}

func (bus *InMemory) processEvents() {
	defer close(bus.done)

	for {
		select {
		case event := <-bus.eventChan:
			bus.handleEvent(event)
		case <-bus.ctx.Done():
			bus.drain()
			return
		}
	}
}

func (bus *InMemory) drain() {
	for {
		select {
		case event := <-bus.eventChan:
			bus.handleEvent(event)
		default:
			return
		}
	}
}

func (bus *InMemory) handleEvent(event domain.Event) {
	bus.mu.RLock()
	handlers := slices.Clone(bus.handlers)
	bus.mu.RUnlock()

	for _, h := range handlers {
		if !h.CanHandle(event.Type) {
			continue
		}
		start := time.Now()

		// Handlers get their own deadline so queued events are still
		// delivered while the bus shuts down.
		ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		ctx = logging.WithLogger(ctx, bus.log)

		done := make(chan error, 1)
		go func() {
			done <- h.Handle(ctx, event)
		}()

		select {
		case err := <-done:
			if err != nil {
				bus.log.Error("error handling event", "error", err, "event_id", event.ID, logging.FieldEvent, event.Type, logging.FieldHandler, fmt.Sprintf("%T", h))
			} else {
				bus.log.Debug("event handled", "event_id", event.ID, logging.FieldEvent, event.Type, "duration", time.Since(start))
			}
		case <-ctx.Done():
			bus.log.Warn("handler timeout", "event_id", event.ID, logging.FieldEvent, event.Type, logging.FieldHandler, fmt.Sprintf("%T", h))
		}
		cancel()
	}
}
