package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"ticketservice/entity"
)

type ticketPriceResponse struct {
	TicketType     string          `json:"ticket_type"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	SeatsPerTicket int             `json:"seats_per_ticket"`
}

func (s Server) GetTicketPrices(c echo.Context) error {
	prices, err := s.ticketPricesRepo.GetTicketPrices(c.Request().Context())
	if err != nil {
		return fmt.Errorf("could not get ticket prices: %w", err)
	}

	response := lo.FilterMap(entity.TicketTypes, func(ticketType entity.TicketType, _ int) (ticketPriceResponse, bool) {
		price, ok := prices[ticketType]
		return ticketPriceResponse{
			TicketType:     ticketType.String(),
			UnitPrice:      price.UnitPrice,
			SeatsPerTicket: price.SeatsPerTicket,
		}, ok
	})

	return c.JSON(http.StatusOK, response)
}
