// ABOUTME: MapBus: mutex-guarded, map-keyed handler bus used as a benchmark baseline
// ABOUTME: Unsubscribe is a returned closure; Publish snapshots handlers before calling them

// Package baseline holds the conventional notification mechanisms the
// benchmark harness compares event.Event against.
package baseline

import "sync"

// Handler is a callback function for published values.
type Handler[T any] func(T)

// MapBus delivers published values to registered handlers in map order.
type MapBus[T any] struct {
	mu       sync.RWMutex
	handlers map[int]Handler[T]
	nextID   int
	snapshot []Handler[T]
}

// NewMapBus creates an empty bus.
func NewMapBus[T any]() *MapBus[T] {
	return &MapBus[T]{
		handlers: make(map[int]Handler[T]),
	}
}

// Subscribe registers a handler and returns an unsubscribe function.
// Calling the returned function more than once is harmless.
func (b *MapBus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}
}

// Publish calls every registered handler with v. Handlers may subscribe or
// unsubscribe while being called; changes apply to the next Publish.
func (b *MapBus[T]) Publish(v T) {
	b.mu.Lock()
	snapshot := b.snapshot[:0]
	for _, h := range b.handlers {
		snapshot = append(snapshot, h)
	}
	b.snapshot = nil
	b.mu.Unlock()

	for _, h := range snapshot {
		h(v)
	}

	b.mu.Lock()
	if b.snapshot == nil {
		clear(snapshot)
		b.snapshot = snapshot
	}
	b.mu.Unlock()
}

// Count returns the number of registered handlers.
func (b *MapBus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
