package bus

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"

	"ticketservice/entity"
)

const EventsTopic = "events"

func NewEventBus(pub message.Publisher) (*cqrs.EventBus, error) {
	return cqrs.NewEventBusWithConfig(pub, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			event, ok := params.Event.(entity.Event)
			if !ok {
				return "", fmt.Errorf("invalid event type: %T doesn't implement entity.Event", params.Event)
			}

			if event.IsInternal() {
				// Publish directly to the per-event topic
				return "internal-events.svc-tickets." + params.EventName, nil
			}

			// Publish to the "events" topic, it's split to per-event topics by the router
			return EventsTopic, nil
		},
		Marshaler: Marshaler,
	})
}

var Marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}
