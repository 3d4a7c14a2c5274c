package mocks

import (
	"context"
	"sync"
	"testing"
)

// MockEventBus implements EventBus for testing purposes
type MockEventBus struct {
	mu          sync.Mutex
	t           *testing.T
	PublishFunc func(ctx context.Context, event any) error
	Published   []any
}

// NewMockEventBus creates a new mock for EventBus
func NewMockEventBus(t *testing.T) *MockEventBus {
	if t == nil {
		panic("missing required argument 't'")
	}

	return &MockEventBus{t: t}
}

// Publish mock implementation
func (m *MockEventBus) Publish(ctx context.Context, event any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PublishFunc != nil {
		if err := m.PublishFunc(ctx, event); err != nil {
			return err
		}
	}
	m.Published = append(m.Published, event)

	return nil
}

// PublishedEvents returns copy of all published events
func (m *MockEventBus) PublishedEvents() []any {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]any(nil), m.Published...)
}
