package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PurchasesTotal The total number of purchase attempts by outcome (counter)
	PurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "purchases_total",
			Help:      "The total number of ticket purchase attempts",
		},
		[]string{"outcome"},
	)

	// PurchasesRejected The total number of rejected purchases by reason (counter)
	PurchasesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "purchases_rejected_total",
			Help:      "The total number of rejected ticket purchases",
		},
		[]string{"reason"},
	)

	// PurchaseDuration Time spent on a single purchase, including gateway calls (histogram)
	PurchaseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tickets",
			Name:      "purchase_duration_seconds",
			Help:      "Time spent on a single ticket purchase",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// TicketsSold The total number of sold tickets by ticket type (counter)
	TicketsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "sold_total",
			Help:      "The total number of sold tickets",
		},
		[]string{"ticket_type"},
	)

	// SeatsReserved The total number of reserved seats (counter)
	SeatsReserved = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "seats_reserved_total",
			Help:      "The total number of reserved seats",
		},
	)

	// MessagesProcessed The total number of processed messages (counter)
	MessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messages",
			Name:      "processed_total",
			Help:      "The total number of processed messages",
		},
		[]string{"topic", "handler"},
	)

	// MessagesProcessingFailed total number of message processing failures (counter)
	MessagesProcessingFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messages",
			Name:      "processing_failed_total",
			Help:      "The total number of message processing failures",
		},
		[]string{"topic", "handler"},
	)

	// MessagesProcessingDuration The total time spent processing messages (summary with quantiles 0.5, 0.9, and 0.99)
	MessagesProcessingDuration = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  "messages",
			Name:       "processing_duration_seconds",
			Help:       "The total time spent processing messages",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"topic", "handler"},
	)
)
