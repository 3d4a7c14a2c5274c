package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketservice/entity"
	"ticketservice/gateway"
	"ticketservice/metrics"
	"ticketservice/mocks"
)

const validAccountID = int64(1)

type testDeps struct {
	prices          *mocks.MockTicketPricesRepository
	payment         *gateway.PaymentMock
	seatReservation *gateway.SeatReservationMock
	eventBus        *mocks.MockEventBus
	service         TicketService
}

func newTestDeps(t *testing.T) testDeps {
	deps := testDeps{
		prices:          mocks.NewMockTicketPricesRepository(t),
		payment:         &gateway.PaymentMock{},
		seatReservation: &gateway.SeatReservationMock{},
		eventBus:        mocks.NewMockEventBus(t),
	}
	deps.service = NewTicketService(deps.prices, deps.payment, deps.seatReservation, deps.eventBus)

	return deps
}

func tickets(quantities ...any) []entity.TicketTypeRequest {
	var requests []entity.TicketTypeRequest
	for i := 0; i < len(quantities); i += 2 {
		requests = append(requests, entity.MustNewTicketTypeRequest(quantities[i].(entity.TicketType), quantities[i+1].(int)))
	}
	return requests
}

func (d testDeps) assertNoGatewayCalls(t *testing.T) {
	t.Helper()
	assert.Empty(t, d.payment.MadePayments(), "payment should not be made")
	assert.Empty(t, d.seatReservation.ReservedSeats(), "seats should not be reserved")
	assert.Empty(t, d.eventBus.PublishedEvents(), "no event should be published")
}

func assertInvalidPurchase(t *testing.T, err error, expectedCause error) {
	t.Helper()

	var invalidPurchase *entity.InvalidPurchaseError
	require.ErrorAs(t, err, &invalidPurchase)
	assert.ErrorIs(t, err, expectedCause)
	assert.Contains(t, err.Error(), "failed to purchase tickets: ")
	assert.Contains(t, err.Error(), expectedCause.Error())
}

func TestTicketService_PurchaseTickets_single_adult(t *testing.T) {
	deps := newTestDeps(t)

	result, err := deps.service.PurchaseTickets(context.Background(), validAccountID, tickets(entity.TicketTypeAdult, 1)...)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Message)
	assert.NotEmpty(t, result.PurchaseID)

	payments := deps.payment.MadePayments()
	require.Len(t, payments, 1)
	assert.Equal(t, validAccountID, payments[0].AccountID)
	assert.True(t, decimal.NewFromInt(25).Equal(payments[0].Amount))

	assert.Equal(t, []gateway.SeatReservation{{AccountID: validAccountID, Seats: 1}}, deps.seatReservation.ReservedSeats())
}

func TestTicketService_PurchaseTickets_family(t *testing.T) {
	deps := newTestDeps(t)

	result, err := deps.service.PurchaseTickets(
		context.Background(),
		validAccountID,
		tickets(entity.TicketTypeAdult, 2, entity.TicketTypeChild, 3, entity.TicketTypeInfant, 1)...,
	)
	require.NoError(t, err)

	payments := deps.payment.MadePayments()
	require.Len(t, payments, 1)
	assert.True(t, decimal.NewFromInt(95).Equal(payments[0].Amount), "got %s", payments[0].Amount)
	assert.Equal(t, []gateway.SeatReservation{{AccountID: validAccountID, Seats: 5}}, deps.seatReservation.ReservedSeats())

	assert.Equal(t, 6, result.Totals.Quantity)
	assert.Equal(t, 1, result.Totals.QuantityOf(entity.TicketTypeInfant))

	events := deps.eventBus.PublishedEvents()
	require.Len(t, events, 1)
	event, ok := events[0].(entity.TicketsPurchased_v1)
	require.True(t, ok, "unexpected event %T", events[0])
	assert.Equal(t, result.PurchaseID, event.PurchaseID)
	assert.Equal(t, map[entity.TicketType]int{
		entity.TicketTypeAdult:  2,
		entity.TicketTypeChild:  3,
		entity.TicketTypeInfant: 1,
	}, event.Tickets)
	assert.Equal(t, 5, event.TotalSeats)
}

func TestTicketService_PurchaseTickets_max_tickets(t *testing.T) {
	deps := newTestDeps(t)

	_, err := deps.service.PurchaseTickets(context.Background(), validAccountID, tickets(entity.TicketTypeAdult, 25)...)
	require.NoError(t, err)

	deps = newTestDeps(t)

	_, err = deps.service.PurchaseTickets(context.Background(), validAccountID, tickets(entity.TicketTypeAdult, 25, entity.TicketTypeChild, 1)...)
	assertInvalidPurchase(t, err, entity.ErrTooManyTickets)
	deps.assertNoGatewayCalls(t)
}

func TestTicketService_PurchaseTickets_quantities_past_int_range(t *testing.T) {
	testCases := map[string][]entity.TicketTypeRequest{
		"adults and children": tickets(entity.TicketTypeAdult, math.MaxInt, entity.TicketTypeChild, math.MaxInt),
		"repeated adults":     tickets(entity.TicketTypeAdult, math.MaxInt, entity.TicketTypeAdult, math.MaxInt),
		"adults and infants":  tickets(entity.TicketTypeAdult, math.MaxInt, entity.TicketTypeInfant, math.MaxInt),
	}

	for name, requests := range testCases {
		t.Run(name, func(t *testing.T) {
			deps := newTestDeps(t)

			var err error
			require.NotPanics(t, func() {
				_, err = deps.service.PurchaseTickets(context.Background(), validAccountID, requests...)
			})
			assertInvalidPurchase(t, err, entity.ErrTooManyTickets)
			deps.assertNoGatewayCalls(t)
		})
	}
}

func TestTicketService_PurchaseTickets_no_adult(t *testing.T) {
	testCases := map[string][]entity.TicketTypeRequest{
		"child and infant": tickets(entity.TicketTypeChild, 1, entity.TicketTypeInfant, 1),
		"zero adults":      tickets(entity.TicketTypeAdult, 0, entity.TicketTypeChild, 1, entity.TicketTypeInfant, 1),
		"only children":    tickets(entity.TicketTypeChild, 5),
	}

	for name, requests := range testCases {
		t.Run(name, func(t *testing.T) {
			deps := newTestDeps(t)

			_, err := deps.service.PurchaseTickets(context.Background(), validAccountID, requests...)
			assertInvalidPurchase(t, err, entity.ErrNoAdultTicket)
			deps.assertNoGatewayCalls(t)
		})
	}
}

func TestTicketService_PurchaseTickets_infants(t *testing.T) {
	deps := newTestDeps(t)

	_, err := deps.service.PurchaseTickets(context.Background(), validAccountID, tickets(entity.TicketTypeAdult, 1, entity.TicketTypeInfant, 2)...)
	assertInvalidPurchase(t, err, entity.ErrTooManyInfants)
	deps.assertNoGatewayCalls(t)

	_, err = deps.service.PurchaseTickets(context.Background(), validAccountID, tickets(entity.TicketTypeAdult, 2, entity.TicketTypeInfant, 2)...)
	require.NoError(t, err)

	// infant seats are free
	assert.Equal(t, []gateway.SeatReservation{{AccountID: validAccountID, Seats: 2}}, deps.seatReservation.ReservedSeats())
}

func TestTicketService_PurchaseTickets_repeated_ticket_types(t *testing.T) {
	deps := newTestDeps(t)

	_, err := deps.service.PurchaseTickets(
		context.Background(),
		validAccountID,
		tickets(entity.TicketTypeAdult, 1, entity.TicketTypeInfant, 1, entity.TicketTypeAdult, 1, entity.TicketTypeInfant, 1)...,
	)
	require.NoError(t, err)

	payments := deps.payment.MadePayments()
	require.Len(t, payments, 1)
	assert.True(t, decimal.NewFromInt(50).Equal(payments[0].Amount))
}

func TestTicketService_PurchaseTickets_account_id(t *testing.T) {
	for _, accountID := range []int64{0, -1, -100} {
		deps := newTestDeps(t)

		_, err := deps.service.PurchaseTickets(context.Background(), accountID, tickets(entity.TicketTypeAdult, 1)...)
		assertInvalidPurchase(t, err, entity.ErrInvalidAccountID)
		deps.assertNoGatewayCalls(t)
		assert.Equal(t, 0, deps.prices.CallsCount(), "ticket prices should not be read")
	}

	for _, accountID := range []int64{1, 2, 1 << 40} {
		deps := newTestDeps(t)

		_, err := deps.service.PurchaseTickets(context.Background(), accountID, tickets(entity.TicketTypeAdult, 1)...)
		require.NoError(t, err)
		assert.Equal(t, accountID, deps.payment.MadePayments()[0].AccountID)
	}
}

func TestTicketService_PurchaseTickets_invalid_ticket_requests(t *testing.T) {
	testCases := map[string][]entity.TicketTypeRequest{
		"no requests":            nil,
		"empty requests":         {},
		"zero value request":     {{}},
		"zero value among valid": {entity.MustNewTicketTypeRequest(entity.TicketTypeAdult, 1), {}},
	}

	for name, requests := range testCases {
		t.Run(name, func(t *testing.T) {
			deps := newTestDeps(t)

			_, err := deps.service.PurchaseTickets(context.Background(), validAccountID, requests...)
			assertInvalidPurchase(t, err, entity.ErrInvalidTicketRequests)
			deps.assertNoGatewayCalls(t)
			assert.Equal(t, 0, deps.prices.CallsCount(), "ticket prices should not be read")
		})
	}
}

func TestTicketService_PurchaseTickets_reads_prices_once(t *testing.T) {
	deps := newTestDeps(t)

	_, err := deps.service.PurchaseTickets(context.Background(), validAccountID, tickets(entity.TicketTypeAdult, 1, entity.TicketTypeChild, 1)...)
	require.NoError(t, err)

	assert.Equal(t, 1, deps.prices.CallsCount())
}

func TestTicketService_PurchaseTickets_ticket_prices_failures(t *testing.T) {
	t.Run("repository error", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.prices.GetTicketPricesFunc = func(ctx context.Context) (entity.TicketPrices, error) {
			return nil, errors.New("connection refused")
		}

		_, err := deps.service.PurchaseTickets(context.Background(), validAccountID, tickets(entity.TicketTypeAdult, 1)...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		deps.assertNoGatewayCalls(t)
	})

	t.Run("incomplete prices", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.prices.GetTicketPricesFunc = func(ctx context.Context) (entity.TicketPrices, error) {
			prices := entity.DefaultTicketPrices()
			delete(prices, entity.TicketTypeInfant)
			return prices, nil
		}

		_, err := deps.service.PurchaseTickets(context.Background(), validAccountID, tickets(entity.TicketTypeAdult, 1)...)
		assertInvalidPurchase(t, err, entity.ErrIncompleteTicketPrices)
		deps.assertNoGatewayCalls(t)
	})
}

func TestTicketService_PurchaseTickets_payment_before_reservation(t *testing.T) {
	deps := newTestDeps(t)

	var paymentsBeforeReservation []gateway.Payment
	deps.seatReservation.OnReserveSeats = func(accountID int64, seats int) {
		paymentsBeforeReservation = deps.payment.MadePayments()
	}

	_, err := deps.service.PurchaseTickets(context.Background(), validAccountID, tickets(entity.TicketTypeAdult, 3)...)
	require.NoError(t, err)

	require.Len(t, paymentsBeforeReservation, 1)
	assert.True(t, decimal.NewFromInt(75).Equal(paymentsBeforeReservation[0].Amount))
}

func TestTicketService_PurchaseTickets_gateway_failures(t *testing.T) {
	t.Run("payment failure", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.payment.Err = errors.New("card declined")

		_, err := deps.service.PurchaseTickets(context.Background(), validAccountID, tickets(entity.TicketTypeAdult, 1)...)

		var invalidPurchase *entity.InvalidPurchaseError
		require.ErrorAs(t, err, &invalidPurchase)
		assert.Equal(t, "failed to purchase tickets: could not make payment: card declined", err.Error())
		deps.assertNoGatewayCalls(t)
	})

	t.Run("reservation failure", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.seatReservation.Err = errors.New("no seats left")

		_, err := deps.service.PurchaseTickets(context.Background(), validAccountID, tickets(entity.TicketTypeAdult, 1)...)

		var invalidPurchase *entity.InvalidPurchaseError
		require.ErrorAs(t, err, &invalidPurchase)
		assert.Contains(t, err.Error(), "no seats left")

		// payment is not refunded
		assert.Len(t, deps.payment.MadePayments(), 1)
		assert.Empty(t, deps.eventBus.PublishedEvents())
	})
}

func TestTicketService_PurchaseTickets_event_publish_failure_is_not_fatal(t *testing.T) {
	deps := newTestDeps(t)
	deps.eventBus.PublishFunc = func(ctx context.Context, event any) error {
		return errors.New("redis is down")
	}

	result, err := deps.service.PurchaseTickets(context.Background(), validAccountID, tickets(entity.TicketTypeAdult, 1)...)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Len(t, deps.seatReservation.ReservedSeats(), 1)
}

func TestTicketService_PurchaseTickets_only_valid_orders_reach_gateways(t *testing.T) {
	for adults := 0; adults <= 4; adults++ {
		for children := 0; children <= 3; children++ {
			for infants := 0; infants <= 4; infants++ {
				deps := newTestDeps(t)

				_, err := deps.service.PurchaseTickets(
					context.Background(),
					validAccountID,
					tickets(entity.TicketTypeAdult, adults, entity.TicketTypeChild, children, entity.TicketTypeInfant, infants)...,
				)

				valid := adults >= 1 && infants <= adults
				if valid {
					require.NoError(t, err)
					assert.Equal(t, []gateway.SeatReservation{{AccountID: validAccountID, Seats: adults + children}}, deps.seatReservation.ReservedSeats())
					continue
				}

				require.Error(t, err)
				deps.assertNoGatewayCalls(t)
			}
		}
	}
}

func TestTicketService_PurchaseTickets_is_stateless(t *testing.T) {
	deps := newTestDeps(t)
	requests := tickets(entity.TicketTypeAdult, 2, entity.TicketTypeChild, 1)

	results := lo.Times(3, func(int) entity.PurchaseResult {
		result, err := deps.service.PurchaseTickets(context.Background(), validAccountID, requests...)
		require.NoError(t, err)
		return result
	})

	for _, payment := range deps.payment.MadePayments() {
		assert.True(t, decimal.NewFromInt(65).Equal(payment.Amount))
	}
	assert.Len(t, lo.Uniq(lo.Map(results, func(r entity.PurchaseResult, _ int) string { return r.PurchaseID })), 3)
}

func TestTicketService_RejectPurchase(t *testing.T) {
	deps := newTestDeps(t)

	rejectedBefore := testutil.ToFloat64(metrics.PurchasesRejected.WithLabelValues("invalid_ticket_requests"))

	cause := fmt.Errorf("%w: expected a ticket object, got null", entity.ErrInvalidTicketRequests)
	invalidPurchase := deps.service.RejectPurchase(context.Background(), cause)

	require.NotNil(t, invalidPurchase)
	assertInvalidPurchase(t, invalidPurchase, entity.ErrInvalidTicketRequests)
	assert.Equal(t, "invalid_ticket_requests", invalidPurchase.Reason())
	assert.Equal(t, rejectedBefore+1, testutil.ToFloat64(metrics.PurchasesRejected.WithLabelValues("invalid_ticket_requests")))

	assert.Equal(t, 0, deps.prices.CallsCount())
	deps.assertNoGatewayCalls(t)
}
