package entity

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTicketType      = errors.New("invalid ticket type")
	ErrInvalidTicketQuantity  = errors.New("invalid number of tickets")
	ErrNegativeTicketQuantity = fmt.Errorf("%w: must not be negative", ErrInvalidTicketQuantity)
	ErrInvalidAccountID       = errors.New("invalid account id")
	ErrInvalidTicketRequests  = errors.New("invalid ticket requests")
	ErrNoAdultTicket          = errors.New("at least 1 adult ticket is required")
	ErrTooManyInfants         = errors.New("number of infant tickets exceeds number of adult tickets")
	ErrTooManyTickets         = errors.New("maximum number of tickets per purchase exceeded")
	ErrIncompleteTicketPrices = errors.New("ticket prices are incomplete")
)

const invalidPurchasePrefix = "failed to purchase tickets: "

// InvalidPurchaseError is the only error returned when a purchase is rejected or fails.
// The underlying cause is available with errors.Is and errors.As.
type InvalidPurchaseError struct {
	cause error
}

func NewInvalidPurchaseError(cause error) *InvalidPurchaseError {
	var invalidPurchase *InvalidPurchaseError
	if errors.As(cause, &invalidPurchase) {
		return invalidPurchase
	}

	return &InvalidPurchaseError{cause: cause}
}

func (e *InvalidPurchaseError) Error() string {
	return invalidPurchasePrefix + e.cause.Error()
}

func (e *InvalidPurchaseError) Unwrap() error {
	return e.cause
}

// Reason returns a short machine friendly name of the rule that rejected the purchase.
func (e *InvalidPurchaseError) Reason() string {
	switch {
	case errors.Is(e.cause, ErrInvalidTicketType):
		return "invalid_ticket_type"
	case errors.Is(e.cause, ErrNegativeTicketQuantity):
		return "negative_ticket_quantity"
	case errors.Is(e.cause, ErrInvalidTicketQuantity):
		return "invalid_ticket_quantity"
	case errors.Is(e.cause, ErrInvalidAccountID):
		return "invalid_account_id"
	case errors.Is(e.cause, ErrInvalidTicketRequests):
		return "invalid_ticket_requests"
	case errors.Is(e.cause, ErrNoAdultTicket):
		return "no_adult_ticket"
	case errors.Is(e.cause, ErrTooManyInfants):
		return "too_many_infants"
	case errors.Is(e.cause, ErrTooManyTickets):
		return "too_many_tickets"
	default:
		return "other"
	}
}
