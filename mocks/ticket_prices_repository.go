package mocks

import (
	"context"
	"sync"
	"testing"

	"ticketservice/entity"
)

// MockTicketPricesRepository implements TicketPricesRepository for testing purposes
type MockTicketPricesRepository struct {
	mu                  sync.Mutex
	t                   *testing.T
	GetTicketPricesFunc func(ctx context.Context) (entity.TicketPrices, error)
	Calls               int
}

// NewMockTicketPricesRepository creates a new mock serving default ticket prices
func NewMockTicketPricesRepository(t *testing.T) *MockTicketPricesRepository {
	if t == nil {
		panic("missing required argument 't'")
	}

	return &MockTicketPricesRepository{t: t}
}

// GetTicketPrices mock implementation
func (m *MockTicketPricesRepository) GetTicketPrices(ctx context.Context) (entity.TicketPrices, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	if m.GetTicketPricesFunc != nil {
		return m.GetTicketPricesFunc(ctx)
	}
	return entity.DefaultTicketPrices(), nil
}

// CallsCount returns how many times the prices were read
func (m *MockTicketPricesRepository) CallsCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Calls
}
