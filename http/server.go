package http

import (
	"context"
	"errors"
	"net/http"

	echoHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"ticketservice/entity"
)

type TicketService interface {
	PurchaseTickets(ctx context.Context, accountID int64, requests ...entity.TicketTypeRequest) (entity.PurchaseResult, error)
	RejectPurchase(ctx context.Context, err error) *entity.InvalidPurchaseError
}

type TicketPricesRepository interface {
	GetTicketPrices(ctx context.Context) (entity.TicketPrices, error)
}

type Server struct {
	addr             string
	e                *echo.Echo
	ticketService    TicketService
	ticketPricesRepo TicketPricesRepository
}

func NewServer(
	addr string,
	ticketService TicketService,
	ticketPricesRepo TicketPricesRepository,
) *Server {
	if ticketService == nil {
		panic("missing ticketService")
	}
	if ticketPricesRepo == nil {
		panic("missing ticketPricesRepo")
	}

	e := echoHTTP.NewEcho()
	e.Use(otelecho.Middleware("ticket-service"))

	server := &Server{
		addr:             addr,
		e:                e,
		ticketService:    ticketService,
		ticketPricesRepo: ticketPricesRepo,
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/ticket-prices", server.GetTicketPrices)
	e.POST("/tickets/purchase", server.PostPurchaseTickets)

	return server
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		err := s.e.Shutdown(context.Background())
		if err != nil {
			log.FromContext(ctx).WithError(err).Error("failed to shutdown HTTP server")
		}
	}()
	log.FromContext(ctx).WithField("addr", s.addr).Info("[HTTP] server listening")
	if err := s.e.Start(s.addr); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
