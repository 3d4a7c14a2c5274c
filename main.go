package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/jessevdk/go-flags"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"ticketservice/app"
	"ticketservice/config"
	"ticketservice/db"
	"ticketservice/db/ticket_prices"
	"ticketservice/entity"
	"ticketservice/gateway"
	"ticketservice/pubsub"
	"ticketservice/service"
	"ticketservice/tracing"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("invalid configuration")
	}

	log.Init(cfg.LogrusLevel())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	traceProvider, err := tracing.ConfigureTraceProvider(cfg.JaegerEndpoint)
	if err != nil {
		panic(err)
	}

	var dbConn *sqlx.DB
	var ticketPricesRepo service.TicketPricesRepository
	switch cfg.TicketPricesSource {
	case config.TicketPricesSourcePostgres:
		dbConn, err = db.NewPostgresDB(cfg.PostgresURL)
		if err != nil {
			panic(err)
		}
		defer dbConn.Close()

		ticketPricesRepo = ticket_prices.NewPostgresRepository(dbConn)
	default:
		ticketPricesRepo = ticket_prices.NewStaticRepository(entity.DefaultTicketPrices())
	}

	redisClient := pubsub.NewRedisClient(cfg.RedisAddr)
	defer redisClient.Close()

	httpClient := gateway.NewHTTPClient(cfg.GatewayTimeout)

	application, err := app.New(
		cfg.HTTPAddr,
		dbConn,
		redisClient,
		ticketPricesRepo,
		gateway.NewPaymentClient(httpClient, cfg.PaymentURL),
		gateway.NewSeatReservationClient(httpClient, cfg.SeatReservationURL),
		traceProvider,
	)
	if err != nil {
		panic(err)
	}

	err = application.Run(ctx)
	if err != nil {
		panic(err)
	}
}
