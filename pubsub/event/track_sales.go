package event

import (
	"context"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/sirupsen/logrus"

	"ticketservice/entity"
	"ticketservice/metrics"
)

func (h Handler) TrackSalesHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"TrackSalesHandler",
		func(ctx context.Context, event *entity.TicketsPurchased_v1) error {
			log.FromContext(ctx).WithFields(logrus.Fields{
				"purchase_id": event.PurchaseID,
				"tickets":     event.Tickets,
			}).Info("Tracking sold tickets")

			for ticketType, quantity := range event.Tickets {
				metrics.TicketsSold.WithLabelValues(ticketType.String()).Add(float64(quantity))
			}

			return nil
		},
	)
}
