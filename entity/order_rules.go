package entity

import (
	"fmt"
)

const MaxTicketsPerPurchase = 25

// ValidateOrder checks business rules of an aggregated order and returns the first violated one.
func ValidateOrder(totals OrderTotals) error {
	adults := totals.QuantityOf(TicketTypeAdult)
	if adults < 1 {
		return ErrNoAdultTicket
	}

	// one infant per adult's lap
	if infants := totals.QuantityOf(TicketTypeInfant); infants > adults {
		return fmt.Errorf("%w: %d infants, %d adults", ErrTooManyInfants, infants, adults)
	}

	if totals.Quantity > MaxTicketsPerPurchase {
		return fmt.Errorf("%w: %d tickets requested, %d allowed", ErrTooManyTickets, totals.Quantity, MaxTicketsPerPurchase)
	}

	return nil
}
