// Package broadcast implements the fan-out hub that pushes result mutations
// to every live stream listener.
//
// The hub keeps a mutex-guarded set of listeners, each owning a bounded FIFO
// channel. Publish delivers to every listener under the hub lock, so publishes
// are serialized and every listener observes events in global publish order.
// There is no replay: a listener subscribed after an event was published never
// receives it.
package broadcast

import (
	"log/slog"
	"sync"
)

// listenerBuffer bounds each listener's outbound queue. A listener that falls
// this far behind is dropped rather than allowed to stall delivery to the
// rest.
const listenerBuffer = 16

// Listener is one live subscriber handle. Receive events from Events until
// the channel is closed by the hub (drop, unsubscribe, or shutdown).
type Listener struct {
	ch   chan Event
	once sync.Once
}

// Events returns the channel events are delivered on. It is closed when the
// listener is removed from the hub.
func (l *Listener) Events() <-chan Event {
	return l.ch
}

// close is only called while holding the owning hub's lock, or before the
// listener is published to anyone.
func (l *Listener) close() {
	l.once.Do(func() { close(l.ch) })
}

// Hub is a concurrency-safe broadcast hub. The zero value is not usable;
// create one with New or use the process-wide Default.
type Hub struct {
	mu        sync.Mutex
	listeners map[*Listener]struct{}
	closed    bool
	logger    *slog.Logger
}

// New creates an empty hub.
func New(logger *slog.Logger) *Hub {
	return &Hub{
		listeners: make(map[*Listener]struct{}),
		logger:    logger,
	}
}

var (
	defaultHub  *Hub
	defaultOnce sync.Once
)

// Default returns the process-wide hub, creating it on first use. The first
// caller triggers initialization; every later caller gets the same hub.
func Default() *Hub {
	defaultOnce.Do(func() {
		defaultHub = New(slog.Default())
	})
	return defaultHub
}

// Subscribe registers a new listener and returns its handle. The listener
// receives every event published strictly after Subscribe returns. Safe to
// call concurrently with Publish and other Subscribe calls.
//
// After Shutdown, Subscribe returns a listener whose channel is already
// closed.
func (h *Hub) Subscribe() *Listener {
	l := &Listener{ch: make(chan Event, listenerBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		l.close()
		return l
	}

	h.listeners[l] = struct{}{}
	listenersGauge.Set(float64(len(h.listeners)))
	return l
}

// Unsubscribe removes a listener and closes its channel. Calling it for a
// listener the hub already dropped is a no-op.
func (h *Hub) Unsubscribe(l *Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.listeners[l]; !ok {
		return
	}
	delete(h.listeners, l)
	l.close()
	listenersGauge.Set(float64(len(h.listeners)))
}

// Publish delivers ev to every live listener. It never returns an error to
// the caller: a listener whose buffer is full is logged, counted, removed
// from the set, and its channel closed, while delivery to the remaining
// listeners continues.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	eventsTotal.WithLabelValues(string(ev.Kind)).Inc()

	for l := range h.listeners {
		select {
		case l.ch <- ev:
		default:
			// Listener is stalled or its transport is gone. Drop it so
			// it cannot leak or slow anyone else down.
			h.logger.Warn("Dropping slow stream listener", "kind", ev.Kind)
			droppedTotal.Inc()
			delete(h.listeners, l)
			l.close()
		}
	}
	listenersGauge.Set(float64(len(h.listeners)))
}

// Shutdown closes every listener channel and rejects further subscriptions.
// Publish becomes a no-op. Safe to call more than once.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for l := range h.listeners {
		delete(h.listeners, l)
		l.close()
	}
	listenersGauge.Set(0)
	h.logger.Info("Broadcast hub shut down")
}
