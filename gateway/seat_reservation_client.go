package gateway

import (
	"context"
	"net/http"
	"strings"
)

type reserveSeatsRequest struct {
	AccountID int64 `json:"account_id"`
	Seats     int   `json:"seats"`
}

type SeatReservationClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewSeatReservationClient(httpClient *http.Client, baseURL string) SeatReservationClient {
	if httpClient == nil {
		panic("missing httpClient")
	}

	return SeatReservationClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

func (c SeatReservationClient) ReserveSeats(ctx context.Context, accountID int64, seats int) error {
	return postJSON(ctx, c.httpClient, c.baseURL+"/seat-reservations", reserveSeatsRequest{
		AccountID: accountID,
		Seats:     seats,
	})
}
