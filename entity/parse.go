package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ParseAccountID reads an account id from raw JSON. Only positive integers are accepted,
// strings, floats, null, arrays and objects are rejected.
func ParseAccountID(raw json.RawMessage) (int64, error) {
	accountID, err := parseJSONInteger(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAccountID, err)
	}
	if accountID <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAccountID, accountID)
	}

	return accountID, nil
}

// ParseTicketQuantity reads a number of tickets from raw JSON.
func ParseTicketQuantity(raw json.RawMessage) (int, error) {
	quantity, err := parseJSONInteger(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTicketQuantity, err)
	}
	if quantity < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeTicketQuantity, quantity)
	}
	if quantity > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d is too large", ErrInvalidTicketQuantity, quantity)
	}

	return int(quantity), nil
}

// ParseTicketTypeRequest builds a TicketTypeRequest from a ticket type name and a raw JSON quantity.
func ParseTicketTypeRequest(ticketTypeName string, rawQuantity json.RawMessage) (TicketTypeRequest, error) {
	ticketType, err := ParseTicketType(ticketTypeName)
	if err != nil {
		return TicketTypeRequest{}, err
	}

	quantity, err := ParseTicketQuantity(rawQuantity)
	if err != nil {
		return TicketTypeRequest{}, err
	}

	return NewTicketTypeRequest(ticketType, quantity)
}

// ParseTicketTypeRequests reads line items from a raw JSON array of {"type": ..., "quantity": ...} objects.
// A missing or empty array, and elements that aren't objects (null, numbers, arrays), are rejected
// with ErrInvalidTicketRequests.
func ParseTicketTypeRequests(raw json.RawMessage) ([]TicketTypeRequest, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: expected an array of tickets, got %s", ErrInvalidTicketRequests, describeJSON(raw))
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one ticket request is required", ErrInvalidTicketRequests)
	}

	requests := make([]TicketTypeRequest, 0, len(items))
	for i, item := range items {
		request, err := parseTicketTypeRequestObject(item)
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
		requests = append(requests, request)
	}

	return requests, nil
}

func parseTicketTypeRequestObject(raw json.RawMessage) (TicketTypeRequest, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return TicketTypeRequest{}, fmt.Errorf("%w: expected a ticket object, got %s", ErrInvalidTicketRequests, describeJSON(raw))
	}

	var fields struct {
		Type     json.RawMessage `json:"type"`
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return TicketTypeRequest{}, fmt.Errorf("%w: %s", ErrInvalidTicketRequests, err)
	}
	if fields.Type == nil && fields.Quantity == nil {
		return TicketTypeRequest{}, fmt.Errorf("%w: ticket object has neither type nor quantity", ErrInvalidTicketRequests)
	}

	var ticketTypeName string
	if err := json.Unmarshal(fields.Type, &ticketTypeName); err != nil {
		return TicketTypeRequest{}, fmt.Errorf("%w: %s", ErrInvalidTicketType, describeJSON(fields.Type))
	}

	return ParseTicketTypeRequest(ticketTypeName, fields.Quantity)
}

func describeJSON(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "nothing"
	}
	return string(trimmed)
}

func parseJSONInteger(raw json.RawMessage) (int64, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return 0, fmt.Errorf("not a JSON value: %w", err)
	}

	number, ok := value.(json.Number)
	if !ok {
		return 0, fmt.Errorf("expected a number, got %s", string(bytes.TrimSpace(raw)))
	}

	if integer, err := strconv.ParseInt(number.String(), 10, 64); err == nil {
		return integer, nil
	}

	// numbers like 2.0 or 1e2 are still integers
	float, err := number.Float64()
	if err != nil {
		return 0, fmt.Errorf("%s is not a number", number)
	}
	if float != math.Trunc(float) || math.Abs(float) > math.MaxInt64/2 {
		return 0, fmt.Errorf("%s is not an integer", number)
	}

	return int64(float), nil
}
