package eventbus

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/boxkeep/internal/domain"
)

type recordingHandler struct {
	mu     sync.Mutex
	types  map[domain.EventType]bool
	events []domain.Event
	err    error
}

func (h *recordingHandler) Handle(_ context.Context, event domain.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return h.err
}

func (h *recordingHandler) CanHandle(t domain.EventType) bool {
	return h.types == nil || h.types[t]
}

func (h *recordingHandler) Events() []domain.Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]domain.Event(nil), h.events...)
}

func newTestBus(t *testing.T) *InMemory {
	t.Helper()
	bus := NewInMemory(10, log.New(io.Discard))
	require.NoError(t, bus.Start())
	return bus
}

func TestInMemory_DeliversInOrder(t *testing.T) {
	bus := newTestBus(t)
	handler := &recordingHandler{}
	require.NoError(t, bus.Subscribe(handler))

	require.NoError(t, bus.Publish(domain.EventContainerCreated, domain.ContainerEventPayload{Owner: "u1", RuntimeID: "r1"}))
	require.NoError(t, bus.Publish(domain.EventContainerDestroyed, domain.ContainerEventPayload{Owner: "u1", RuntimeID: "r1"}))
	require.NoError(t, bus.Stop())

	events := handler.Events()
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventContainerCreated, events[0].Type)
	assert.Equal(t, domain.EventContainerDestroyed, events[1].Type)
	assert.Equal(t, domain.OwnerID("u1"), events[0].Owner)
	assert.Equal(t, "r1", events[0].RuntimeID)
	assert.NotEmpty(t, events[0].ID)
}

func TestInMemory_FiltersByType(t *testing.T) {
	bus := newTestBus(t)
	handler := &recordingHandler{types: map[domain.EventType]bool{domain.EventContainerDrift: true}}
	require.NoError(t, bus.Subscribe(handler))

	require.NoError(t, bus.Publish(domain.EventContainerCreated, domain.ContainerEventPayload{}))
	require.NoError(t, bus.Publish(domain.EventContainerDrift, domain.ContainerEventPayload{}))
	require.NoError(t, bus.Stop())

	events := handler.Events()
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventContainerDrift, events[0].Type)
}

func TestInMemory_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := newTestBus(t)
	failing := &recordingHandler{err: errors.New("boom")}
	ok := &recordingHandler{}
	require.NoError(t, bus.Subscribe(failing))
	require.NoError(t, bus.Subscribe(ok))

	require.NoError(t, bus.Publish(domain.EventContainerCreated, domain.ContainerEventPayload{}))
	require.NoError(t, bus.Stop())

	assert.Len(t, failing.Events(), 1)
	assert.Len(t, ok.Events(), 1)
}

func TestInMemory_Unsubscribe(t *testing.T) {
	bus := newTestBus(t)
	handler := &recordingHandler{}
	require.NoError(t, bus.Subscribe(handler))
	require.NoError(t, bus.Unsubscribe(handler))
	assert.Error(t, bus.Unsubscribe(handler))

	require.NoError(t, bus.Publish(domain.EventContainerCreated, domain.ContainerEventPayload{}))
	require.NoError(t, bus.Stop())
	assert.Empty(t, handler.Events())
}

func TestInMemory_PublishAfterStop(t *testing.T) {
	bus := NewInMemory(1, log.New(io.Discard))
	require.NoError(t, bus.Start())
	require.NoError(t, bus.Stop())

	// Fill the buffer so the only ready case is the stopped context.
	bus.eventChan <- domain.Event{}
	err := bus.Publish(domain.EventContainerCreated, nil)
	assert.Error(t, err)
}

func TestInMemory_UsesInjectedClock(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	bus := NewInMemory(10, log.New(io.Discard))
	bus.now = func() time.Time { return fixed }
	require.NoError(t, bus.Start())

	handler := &recordingHandler{}
	require.NoError(t, bus.Subscribe(handler))
	require.NoError(t, bus.Publish(domain.EventTerminalIssued, domain.ContainerEventPayload{Owner: "u1", RuntimeID: "r1"}))
	require.NoError(t, bus.Stop())

	events := handler.Events()
	require.Len(t, events, 1)
	assert.Equal(t, fixed, events[0].Timestamp)
	assert.Equal(t, domain.OwnerID("u1"), events[0].Owner)
}
