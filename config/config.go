package config

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

const (
	TicketPricesSourceStatic   = "static"
	TicketPricesSourcePostgres = "postgres"
)

type Config struct {
	HTTPAddr string `long:"http-addr" env:"HTTP_ADDR" default:":8080" description:"address of the HTTP server"`
	LogLevel string `long:"log-level" env:"LOG_LEVEL" default:"info" description:"logrus log level"`

	TicketPricesSource string `long:"ticket-prices-source" env:"TICKET_PRICES_SOURCE" default:"static" choice:"static" choice:"postgres" description:"where ticket prices are read from"`
	PostgresURL        string `long:"postgres-url" env:"POSTGRES_URL" description:"Postgres connection string, required for postgres ticket prices"`
	RedisAddr          string `long:"redis-addr" env:"REDIS_ADDR" description:"address of Redis used for events"`

	PaymentURL         string        `long:"payment-url" env:"PAYMENT_URL" description:"base URL of the payment gateway"`
	SeatReservationURL string        `long:"seat-reservation-url" env:"SEAT_RESERVATION_URL" description:"base URL of the seat reservation gateway"`
	GatewayTimeout     time.Duration `long:"gateway-timeout" env:"GATEWAY_TIMEOUT" default:"10s" description:"timeout of a single gateway request"`

	JaegerEndpoint string `long:"jaeger-endpoint" env:"JAEGER_ENDPOINT" description:"Jaeger collector endpoint, traces are not exported when empty"`
}

// Load reads the config from command line arguments and environment variables.
func Load(args []string) (Config, error) {
	var cfg Config

	_, err := flags.NewParser(&cfg, flags.Default).ParseArgs(args)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.RedisAddr == "" {
		return fmt.Errorf("redis address is required")
	}
	if c.PaymentURL == "" || c.SeatReservationURL == "" {
		return fmt.Errorf("payment and seat reservation urls are required")
	}
	if c.TicketPricesSource == TicketPricesSourcePostgres && c.PostgresURL == "" {
		return fmt.Errorf("postgres url is required when ticket prices are read from postgres")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

func (c Config) LogrusLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}
