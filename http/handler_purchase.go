package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"ticketservice/entity"
)

type purchaseTicketsRequest struct {
	AccountID json.RawMessage `json:"account_id"`
	Tickets   json.RawMessage `json:"tickets"`
}

type purchaseFailedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

func (s Server) PostPurchaseTickets(c echo.Context) error {
	ctx := c.Request().Context()

	var request purchaseTicketsRequest
	err := c.Bind(&request)
	if err != nil {
		return purchaseFailed(c, s.ticketService.RejectPurchase(
			ctx,
			fmt.Errorf("%w: could not decode request: %s", entity.ErrInvalidTicketRequests, err),
		))
	}

	accountID, requests, err := request.parse()
	if err != nil {
		return purchaseFailed(c, s.ticketService.RejectPurchase(ctx, err))
	}

	result, err := s.ticketService.PurchaseTickets(ctx, accountID, requests...)
	if err != nil {
		var invalidPurchase *entity.InvalidPurchaseError
		if errors.As(err, &invalidPurchase) {
			return purchaseFailed(c, invalidPurchase)
		}

		return err
	}

	return c.JSON(http.StatusCreated, result)
}

func (r purchaseTicketsRequest) parse() (int64, []entity.TicketTypeRequest, error) {
	accountID, err := entity.ParseAccountID(r.AccountID)
	if err != nil {
		return 0, nil, err
	}

	requests, err := entity.ParseTicketTypeRequests(r.Tickets)
	if err != nil {
		return 0, nil, err
	}

	return accountID, requests, nil
}

func purchaseFailed(c echo.Context, err *entity.InvalidPurchaseError) error {
	status := http.StatusBadRequest
	reason := err.Reason()
	if reason == "other" {
		// the order was valid, one of the dependencies failed
		status = http.StatusBadGateway
	}

	return c.JSON(status, purchaseFailedResponse{
		Success: false,
		Message: err.Error(),
		Reason:  reason,
	})
}
