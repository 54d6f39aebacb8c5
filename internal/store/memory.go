package store

import (
	"context"
	"sync"
	"time"

	"github.com/pagepulse/pagepulse/internal/tracking"
)

// MemoryStore is an in-memory implementation of tracking.Store.
type MemoryStore struct {
	mu     sync.Mutex
	events []tracking.Event
}

// NewMemoryStore creates a new in-memory event store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Append(_ context.Context, event tracking.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}

	m.events = append(m.events, event)
	if len(m.events) > tracking.MaxEvents {
		m.events = m.events[len(m.events)-tracking.MaxEvents:]
	}

	return nil
}

func (m *MemoryStore) All(_ context.Context) ([]tracking.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]tracking.Event, len(m.events))
	copy(out, m.events)

	return out, nil
}

// Ping always succeeds for the in-memory store.
func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}
