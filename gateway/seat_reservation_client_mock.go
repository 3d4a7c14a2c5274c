package gateway

import (
	"context"
	"sync"
)

type SeatReservation struct {
	AccountID int64
	Seats     int
}

type SeatReservationMock struct {
	mock sync.Mutex

	Reservations []SeatReservation
	Err          error

	// OnReserveSeats is called before the reservation is stored.
	OnReserveSeats func(accountID int64, seats int)
}

func (c *SeatReservationMock) ReserveSeats(ctx context.Context, accountID int64, seats int) error {
	c.mock.Lock()
	defer c.mock.Unlock()

	if c.OnReserveSeats != nil {
		c.OnReserveSeats(accountID, seats)
	}

	if c.Err != nil {
		return c.Err
	}

	c.Reservations = append(c.Reservations, SeatReservation{AccountID: accountID, Seats: seats})

	return nil
}

func (c *SeatReservationMock) ReservedSeats() []SeatReservation {
	c.mock.Lock()
	defer c.mock.Unlock()

	return append([]SeatReservation(nil), c.Reservations...)
}
