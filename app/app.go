package app

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	dbLib "ticketservice/db"
	"ticketservice/http"
	"ticketservice/pubsub"
	"ticketservice/pubsub/bus"
	"ticketservice/pubsub/event"
	"ticketservice/service"
)

type App struct {
	db              *sqlx.DB
	watermillRouter *message.Router
	httpServer      *http.Server
	traceProvider   *tracesdk.TracerProvider
}

// New wires the application. db is optional, it's needed only when ticket prices are stored in Postgres.
func New(
	addr string,
	db *sqlx.DB,
	redisClient *redis.Client,
	ticketPricesRepo service.TicketPricesRepository,
	paymentService service.PaymentService,
	seatReservationService service.SeatReservationService,
	traceProvider *tracesdk.TracerProvider,
) (App, error) {
	watermillLogger := log.NewWatermill(log.FromContext(context.Background()))

	var redisPublisher message.Publisher
	redisPublisher, err := pubsub.NewRedisPublisher(redisClient, watermillLogger)
	if err != nil {
		return App{}, fmt.Errorf("failed to create redis publisher: %w", err)
	}
	redisPublisher = log.CorrelationPublisherDecorator{Publisher: redisPublisher}

	eventBus, err := bus.NewEventBus(redisPublisher)
	if err != nil {
		return App{}, fmt.Errorf("failed to create event bus: %w", err)
	}

	ticketService := service.NewTicketService(
		ticketPricesRepo,
		paymentService,
		seatReservationService,
		eventBus,
	)

	eventsSplitterSubscriber, err := pubsub.NewRedisSubscriber(redisClient, "svc-tickets.events_splitter", watermillLogger)
	if err != nil {
		return App{}, fmt.Errorf("failed to create redis subscriber: %w", err)
	}

	watermillRouter, err := pubsub.NewWatermillRouter(
		redisPublisher,
		eventsSplitterSubscriber,
		event.NewProcessorConfig(redisClient, watermillLogger),
		event.NewHandler(),
		watermillLogger,
	)
	if err != nil {
		return App{}, fmt.Errorf("failed to create watermill router: %w", err)
	}

	httpServer := http.NewServer(
		addr,
		ticketService,
		ticketPricesRepo,
	)

	return App{
		db:              db,
		watermillRouter: watermillRouter,
		httpServer:      httpServer,
		traceProvider:   traceProvider,
	}, nil
}

func (a App) Run(ctx context.Context) error {
	if a.db != nil {
		if err := dbLib.InitializeDatabaseSchema(a.db); err != nil {
			return fmt.Errorf("failed to initialize database schema: %w", err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	if a.traceProvider != nil {
		g.Go(func() error {
			<-ctx.Done()
			return a.traceProvider.Shutdown(context.Background())
		})
	}

	g.Go(func() error {
		return a.watermillRouter.Run(ctx)
	})

	g.Go(func() error {
		// the app shouldn't be healthy before the router is ready
		select {
		case <-a.watermillRouter.Running():
		case <-ctx.Done():
			return nil
		}

		return a.httpServer.Run(ctx)
	})

	return g.Wait()
}
