package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/lithammer/shortuuid/v3"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ticketservice/entity"
	"ticketservice/metrics"
)

type TicketPricesRepository interface {
	GetTicketPrices(ctx context.Context) (entity.TicketPrices, error)
}

type PaymentService interface {
	MakePayment(ctx context.Context, accountID int64, amount decimal.Decimal) error
}

type SeatReservationService interface {
	ReserveSeats(ctx context.Context, accountID int64, seats int) error
}

type EventBus interface {
	Publish(ctx context.Context, event any) error
}

type TicketService struct {
	ticketPricesRepo       TicketPricesRepository
	paymentService         PaymentService
	seatReservationService SeatReservationService
	eventBus               EventBus
}

func NewTicketService(
	ticketPricesRepo TicketPricesRepository,
	paymentService PaymentService,
	seatReservationService SeatReservationService,
	eventBus EventBus,
) TicketService {
	if ticketPricesRepo == nil {
		panic("missing ticketPricesRepo")
	}
	if paymentService == nil {
		panic("missing paymentService")
	}
	if seatReservationService == nil {
		panic("missing seatReservationService")
	}
	if eventBus == nil {
		panic("missing eventBus")
	}

	return TicketService{
		ticketPricesRepo:       ticketPricesRepo,
		paymentService:         paymentService,
		seatReservationService: seatReservationService,
		eventBus:               eventBus,
	}
}

// PurchaseTickets validates the order, charges the account and reserves seats.
//
// Payment is always made before seats are reserved. Every failure is returned as *entity.InvalidPurchaseError,
// the cause can be checked with errors.Is (for example entity.ErrNoAdultTicket).
// When seat reservation fails after a successful payment, the payment is not refunded.
func (s TicketService) PurchaseTickets(
	ctx context.Context,
	accountID int64,
	requests ...entity.TicketTypeRequest,
) (entity.PurchaseResult, error) {
	ctx, span := otel.Tracer("").Start(ctx, "PurchaseTickets")
	span.SetAttributes(attribute.Int64("account_id", accountID))
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.PurchaseDuration.Observe(time.Since(start).Seconds())
	}()

	logger := log.FromContext(ctx).WithField("account_id", accountID)

	totals, err := s.purchaseTickets(ctx, accountID, requests)
	if err != nil {
		return entity.PurchaseResult{}, rejectPurchase(ctx, logger, err)
	}

	purchaseID := shortuuid.New()
	span.SetAttributes(attribute.String("purchase_id", purchaseID))
	metrics.PurchasesTotal.WithLabelValues("succeeded").Inc()
	metrics.SeatsReserved.Add(float64(totals.TotalSeats))

	logger = logger.WithFields(logrus.Fields{
		"purchase_id": purchaseID,
		"total_price": totals.TotalPrice.String(),
		"total_seats": totals.TotalSeats,
	})
	logger.Info("Tickets purchased")

	// payment and reservation are already done, so a failed publish must not fail the purchase
	err = s.eventBus.Publish(ctx, entity.NewTicketsPurchased(purchaseID, accountID, totals))
	if err != nil {
		logger.WithError(err).Error("Failed to publish TicketsPurchased event")
	}

	return entity.NewPurchaseResult(purchaseID, accountID, totals), nil
}

// RejectPurchase reports a purchase that was refused before PurchaseTickets could be called,
// for example because the request couldn't be parsed. It's logged, traced and counted the same way
// as purchases rejected by PurchaseTickets.
func (s TicketService) RejectPurchase(ctx context.Context, err error) *entity.InvalidPurchaseError {
	ctx, span := otel.Tracer("").Start(ctx, "PurchaseTickets")
	defer span.End()

	return rejectPurchase(ctx, log.FromContext(ctx), err)
}

func rejectPurchase(ctx context.Context, logger *logrus.Entry, err error) *entity.InvalidPurchaseError {
	invalidPurchase := entity.NewInvalidPurchaseError(err)

	span := trace.SpanFromContext(ctx)
	span.RecordError(invalidPurchase)
	span.SetStatus(codes.Error, invalidPurchase.Error())

	metrics.PurchasesTotal.WithLabelValues("rejected").Inc()
	metrics.PurchasesRejected.WithLabelValues(invalidPurchase.Reason()).Inc()

	logger.WithError(err).WithField("reason", invalidPurchase.Reason()).Info("Ticket purchase rejected")

	return invalidPurchase
}

func (s TicketService) purchaseTickets(
	ctx context.Context,
	accountID int64,
	requests []entity.TicketTypeRequest,
) (entity.OrderTotals, error) {
	if accountID <= 0 {
		return entity.OrderTotals{}, fmt.Errorf("%w: %d", entity.ErrInvalidAccountID, accountID)
	}

	if err := validateTicketRequests(requests); err != nil {
		return entity.OrderTotals{}, err
	}

	prices, err := s.ticketPricesRepo.GetTicketPrices(ctx)
	if err != nil {
		return entity.OrderTotals{}, fmt.Errorf("could not get ticket prices: %w", err)
	}
	if err := prices.Validate(); err != nil {
		return entity.OrderTotals{}, err
	}

	totals := entity.CalculateOrderTotals(requests, prices)

	if err := entity.ValidateOrder(totals); err != nil {
		return entity.OrderTotals{}, err
	}

	if err := s.paymentService.MakePayment(ctx, accountID, totals.TotalPrice); err != nil {
		return entity.OrderTotals{}, fmt.Errorf("could not make payment: %w", err)
	}

	if err := s.seatReservationService.ReserveSeats(ctx, accountID, totals.TotalSeats); err != nil {
		return entity.OrderTotals{}, fmt.Errorf("could not reserve seats: %w", err)
	}

	return totals, nil
}

func validateTicketRequests(requests []entity.TicketTypeRequest) error {
	if len(requests) == 0 {
		return fmt.Errorf("%w: at least one ticket request is required", entity.ErrInvalidTicketRequests)
	}

	for i, request := range requests {
		if request.IsZero() {
			return fmt.Errorf("%w: request %d was not created with NewTicketTypeRequest", entity.ErrInvalidTicketRequests, i)
		}
	}

	return nil
}
