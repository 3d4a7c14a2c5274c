package entity

import (
	"fmt"
)

// TicketTypeRequest is a single line of a purchase: how many tickets of one type are requested.
// It can be created only with NewTicketTypeRequest, the zero value is not a valid request.
type TicketTypeRequest struct {
	ticketType TicketType
	quantity   int
}

func NewTicketTypeRequest(ticketType TicketType, quantity int) (TicketTypeRequest, error) {
	if !ticketType.IsValid() {
		return TicketTypeRequest{}, fmt.Errorf("%w: %s", ErrInvalidTicketType, ticketType)
	}
	if quantity < 0 {
		return TicketTypeRequest{}, fmt.Errorf("%w: %d", ErrNegativeTicketQuantity, quantity)
	}

	return TicketTypeRequest{
		ticketType: ticketType,
		quantity:   quantity,
	}, nil
}

// MustNewTicketTypeRequest is NewTicketTypeRequest that panics on error.
func MustNewTicketTypeRequest(ticketType TicketType, quantity int) TicketTypeRequest {
	request, err := NewTicketTypeRequest(ticketType, quantity)
	if err != nil {
		panic(err)
	}

	return request
}

func (r TicketTypeRequest) TicketType() TicketType {
	return r.ticketType
}

func (r TicketTypeRequest) Quantity() int {
	return r.quantity
}

// IsZero reports whether r was not built with NewTicketTypeRequest.
func (r TicketTypeRequest) IsZero() bool {
	return r == TicketTypeRequest{}
}
