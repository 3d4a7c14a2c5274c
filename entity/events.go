package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Event interface {
	IsInternal() bool
}

type EventHeader struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:          uuid.NewString(),
		PublishedAt: time.Now().UTC(),
	}
}

type TicketsPurchased_v1 struct {
	Header EventHeader `json:"header"`

	PurchaseID string             `json:"purchase_id"`
	AccountID  int64              `json:"account_id"`
	Tickets    map[TicketType]int `json:"tickets"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	TotalSeats int                `json:"total_seats"`
}

func (e TicketsPurchased_v1) IsInternal() bool {
	return false
}

func NewTicketsPurchased(purchaseID string, accountID int64, totals OrderTotals) TicketsPurchased_v1 {
	tickets := make(map[TicketType]int, len(totals.ByType))
	for ticketType, typeTotals := range totals.ByType {
		tickets[ticketType] = typeTotals.Quantity
	}

	return TicketsPurchased_v1{
		Header:     NewEventHeader(),
		PurchaseID: purchaseID,
		AccountID:  accountID,
		Tickets:    tickets,
		TotalPrice: totals.TotalPrice,
		TotalSeats: totals.TotalSeats,
	}
}
