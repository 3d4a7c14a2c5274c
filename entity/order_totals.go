package entity

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

type TicketTotals struct {
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	TotalSeats int             `json:"total_seats"`
}

func (t TicketTotals) add(quantity int, price TicketPrice) TicketTotals {
	return TicketTotals{
		Quantity:   saturatingAdd(t.Quantity, quantity),
		TotalPrice: t.TotalPrice.Add(price.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))),
		TotalSeats: saturatingAdd(t.TotalSeats, saturatingMul(quantity, price.SeatsPerTicket)),
	}
}

// saturatingAdd adds two non-negative ints, the result is capped at math.MaxInt instead of wrapping around.
func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// saturatingMul multiplies two non-negative ints, the result is capped at math.MaxInt instead of wrapping around.
func saturatingMul(a, b int) int {
	if b != 0 && a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// OrderTotals holds totals of a single purchase, per ticket type and for the whole order.
// Order-wide totals are always the sum of the per type ones.
// Quantities and seats never overflow, they stop at math.MaxInt, so an oversized order still fails MaxTicketsPerPurchase.
type OrderTotals struct {
	TicketTotals
	ByType map[TicketType]TicketTotals `json:"by_type"`
}

// CalculateOrderTotals sums quantity, price and seats of all requests.
// Requests of the same type are added together.
//
// It panics if prices are missing any of the requested types, prices should be validated first.
func CalculateOrderTotals(requests []TicketTypeRequest, prices TicketPrices) OrderTotals {
	totals := OrderTotals{
		ByType: make(map[TicketType]TicketTotals, len(TicketTypes)),
	}

	for _, request := range requests {
		price, ok := prices[request.TicketType()]
		if !ok {
			panic(fmt.Sprintf("missing price for ticket type %s", request.TicketType()))
		}

		totals.ByType[request.TicketType()] = totals.ByType[request.TicketType()].add(request.Quantity(), price)
		totals.TicketTotals = totals.TicketTotals.add(request.Quantity(), price)
	}

	return totals
}

// QuantityOf returns number of tickets of given type, 0 if the type was not requested.
func (t OrderTotals) QuantityOf(ticketType TicketType) int {
	return t.ByType[ticketType].Quantity
}
