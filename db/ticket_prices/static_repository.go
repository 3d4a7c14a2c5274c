package ticket_prices

import (
	"context"

	"ticketservice/entity"
)

// StaticRepository serves a fixed set of prices, it's used when no database is configured.
type StaticRepository struct {
	prices entity.TicketPrices
}

func NewStaticRepository(prices entity.TicketPrices) StaticRepository {
	return StaticRepository{prices: prices}
}

func (r StaticRepository) GetTicketPrices(ctx context.Context) (entity.TicketPrices, error) {
	prices := make(entity.TicketPrices, len(r.prices))
	for ticketType, price := range r.prices {
		prices[ticketType] = price
	}

	return prices, nil
}
