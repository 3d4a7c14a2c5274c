package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type TicketPrice struct {
	UnitPrice      decimal.Decimal `json:"unit_price"`
	SeatsPerTicket int             `json:"seats_per_ticket"`
}

// TicketPrices is a snapshot of the catalog: price and seats used by a single ticket of each type.
type TicketPrices map[TicketType]TicketPrice

// DefaultTicketPrices returns the prices used when no other catalog is configured.
// Infants sit on an adult's lap, so they don't take a seat.
func DefaultTicketPrices() TicketPrices {
	return TicketPrices{
		TicketTypeInfant: {UnitPrice: decimal.Zero, SeatsPerTicket: 0},
		TicketTypeChild:  {UnitPrice: decimal.NewFromInt(15), SeatsPerTicket: 1},
		TicketTypeAdult:  {UnitPrice: decimal.NewFromInt(25), SeatsPerTicket: 1},
	}
}

// Validate checks that every ticket type has a non-negative price and seat count.
func (p TicketPrices) Validate() error {
	for _, ticketType := range TicketTypes {
		price, ok := p[ticketType]
		if !ok {
			return fmt.Errorf("%w: missing %s", ErrIncompleteTicketPrices, ticketType)
		}
		if price.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: negative price for %s", ErrIncompleteTicketPrices, ticketType)
		}
		if price.SeatsPerTicket < 0 {
			return fmt.Errorf("%w: negative seats for %s", ErrIncompleteTicketPrices, ticketType)
		}
	}

	return nil
}
