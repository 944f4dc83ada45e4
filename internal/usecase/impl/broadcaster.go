package impl

import (
	"slices"
	"sync"
)

// broadcaster fans a value out to registered listeners, in registration
// order, on the notifying goroutine.
type broadcaster[T any] struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[uint64]func(T)
}

func newBroadcaster[T any]() *broadcaster[T] {
	return &broadcaster[T]{listeners: make(map[uint64]func(T))}
}

func (b *broadcaster[T]) Subscribe(listener func(T)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = listener
	b.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

// Notify calls every listener outside the lock so listeners may subscribe
// or unsubscribe.
func (b *broadcaster[T]) Notify(value T) {
	b.mu.Lock()
	ids := make([]uint64, 0, len(b.listeners))
	for id := range b.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(T), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, b.listeners[id])
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
}

func (b *broadcaster[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.listeners)
}
