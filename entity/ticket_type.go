package entity

import (
	"fmt"
)

type TicketType int

const (
	TicketTypeUnknown TicketType = iota
	TicketTypeInfant
	TicketTypeChild
	TicketTypeAdult
)

// TicketTypes lists every ticket type that can be purchased.
var TicketTypes = []TicketType{
	TicketTypeInfant,
	TicketTypeChild,
	TicketTypeAdult,
}

var ticketTypeNames = map[TicketType]string{
	TicketTypeInfant: "INFANT",
	TicketTypeChild:  "CHILD",
	TicketTypeAdult:  "ADULT",
}

func ParseTicketType(name string) (TicketType, error) {
	for ticketType, ticketTypeName := range ticketTypeNames {
		if ticketTypeName == name {
			return ticketType, nil
		}
	}

	return TicketTypeUnknown, fmt.Errorf("%w: %q", ErrInvalidTicketType, name)
}

func (t TicketType) IsValid() bool {
	_, ok := ticketTypeNames[t]
	return ok
}

func (t TicketType) String() string {
	if name, ok := ticketTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TicketType(%d)", int(t))
}

func (t TicketType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTicketType, t)
	}

	return []byte(t.String()), nil
}

func (t *TicketType) UnmarshalText(text []byte) error {
	ticketType, err := ParseTicketType(string(text))
	if err != nil {
		return err
	}

	*t = ticketType
	return nil
}
